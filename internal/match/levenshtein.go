package match

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-rune edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Keep ra as the shorter string so the rows stay small.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// LevenshteinNormalized computes a normalized similarity score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
// The score is: 1 - (distance / max(len(a), len(b))) counted in runes.
func LevenshteinNormalized(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1.0
	}

	distance := Levenshtein(a, b)

	return 1.0 - float64(distance)/float64(max(la, lb))
}

// NormalizedLevenshteinScore computes the similarity score between two identifiers
// after normalizing them. This is the primary function for name matching.
func NormalizedLevenshteinScore(a, b string) float64 {
	return LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b))
}
