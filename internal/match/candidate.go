package match

import (
	"sort"
)

// DefaultMinScore is the minimum similarity for a name to be suggested.
const DefaultMinScore = 0.6

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against target and returns them
// sorted by score (descending), then by name for determinism.
func RankCandidates(target string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	for _, name := range known {
		candidates = append(candidates, Candidate{
			Name:  name,
			Score: NormalizedLevenshteinScore(target, name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n known names whose similarity to target is at least
// DefaultMinScore, best first.
func Suggest(target string, known []string, n int) []string {
	ranked := RankCandidates(target, known).AboveThreshold(DefaultMinScore).Top(n)

	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}
