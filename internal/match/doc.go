// Package match provides column-name normalization, Levenshtein distance
// calculation and candidate ranking used for "did you mean" suggestions.
//
// Key functions:
//   - ColumnName: derives the CSVW machine name of a column from its title
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names against an unknown one
package match
