package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ColumnName derives the machine name of a column from its human title.
// The title is put in NFC form, every rune that is not a letter or digit is
// replaced with '_' and the result is lower-cased, so "Flow Type!" becomes
// "flow_type_".
//
// Distinct titles may produce the same name; callers that care must detect
// the collision themselves.
func ColumnName(title string) string {
	var b strings.Builder

	b.Grow(len(title))

	for _, r := range norm.NFC.String(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune('_')
		}
	}

	return b.String()
}

// NormalizeIdent normalizes an identifier for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize CamelCase.
// 2. Case-fold to lower.
// 3. Strip separators (_, -, spaces).
func NormalizeIdent(s string) string {
	// First expand CamelCase before lowercasing
	tokens := tokenizeCamelCase(s)

	joined := strings.Join(tokens, "")
	joined = strings.ToLower(joined)
	joined = stripSeparators(joined)

	return joined
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "landingPage" -> ["landing", "Page"]
//   - "contactUri" -> ["contact", "Uri"]
//   - "Flow Type" -> ["Flow", "Type"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Handle separators - start a new token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)
	isPrevSep := isSeparator(prevRune)

	// e.g., "contactUri" -> split before 'U'
	if isUpper && !isPrevUpper && !isPrevSep {
		return true
	}

	// End of acronym: "CNCode" -> "CN" + "Code"
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
