package match

import (
	"math"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"hello", "hello", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},  // substitution
		{"a", "ab", 1}, // insertion
		{"ab", "a", 1}, // deletion

		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"ABC", "abc", 3},

		// Column config keys
		{"dimenson", "dimension", 1},
		{"measure", "measures", 1},

		// Multi-byte runes count once
		{"größe", "grosse", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"abc", "abc", 1.0},
		{"abc", "", 0.0},
		{"abcd", "abce", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestNormalizedLevenshteinScore(t *testing.T) {
	if got := NormalizedLevenshteinScore("Flow Type", "flow_type"); got != 1.0 {
		t.Errorf("NormalizedLevenshteinScore = %f, want 1.0", got)
	}
}
