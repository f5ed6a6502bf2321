package dictionary

import (
	"testing"
)

func TestDamerauLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "test", "test", 0},
		{"both empty", "", "", 0},
		{"empty to word", "", "abc", 3},
		{"word to empty", "abc", "", 3},
		{"single substitution", "cat", "bat", 1},
		{"single insertion", "tst", "test", 1},
		{"single deletion", "tests", "test", 1},
		{"transposition counts once", "teh", "the", 1},
		{"two edits", "kitten", "mitten", 1},
		{"classic", "kitten", "sitting", 3},
		{"unicode runes", "café", "cafe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DamerauLevenshteinDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("DamerauLevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDamerauLevenshteinDistanceWithLimit(t *testing.T) {
	tests := []struct {
		name        string
		a           string
		b           string
		maxDistance int
		want        int
	}{
		{"within limit", "teh", "the", 2, 1},
		{"at limit", "kitten", "mitten", 1, 1},
		{"over limit returns limit plus one", "kitten", "sitting", 2, 3},
		{"length gap alone exceeds limit", "a", "abcdef", 2, 3},
		{"identical", "word", "word", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DamerauLevenshteinDistanceWithLimit(tt.a, tt.b, tt.maxDistance)
			if got != tt.want {
				t.Errorf("DamerauLevenshteinDistanceWithLimit(%q, %q, %d) = %d, want %d",
					tt.a, tt.b, tt.maxDistance, got, tt.want)
			}
		})
	}

	// The limited variant must agree with the full computation whenever the
	// distance is within the limit.
	pairs := [][2]string{{"teh", "the"}, {"tst", "test"}, {"wrld", "world"}, {"abc", "abd"}}
	for _, pair := range pairs {
		full := DamerauLevenshteinDistance(pair[0], pair[1])
		limited := DamerauLevenshteinDistanceWithLimit(pair[0], pair[1], 3)
		if full != limited {
			t.Errorf("limit variant disagrees for (%q, %q): %d vs %d", pair[0], pair[1], limited, full)
		}
	}
}
