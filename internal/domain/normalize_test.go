package domain

import "testing"

func TestCleanWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain word", "cat", "cat"},
		{"leading and trailing", "  cat  ", "cat"},
		{"inner run", "black   cat", "black cat"},
		{"tabs and newlines", "black\t\ncat", "black cat"},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanWhitespace(tt.input); got != tt.want {
				t.Errorf("CleanWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "cat", "cat"},
		{"uppercase", "CAT", "cat"},
		{"mixed case", "CaT", "cat"},
		{"accents decompose to base letters", "Café-123!", "cafe"},
		{"diaeresis", "naïve", "naive"},
		{"hyphen merged away", "co-operate", "cooperate"},
		{"apostrophe stripped", "don't", "dont"},
		{"inner spaces stripped", "  ice   cream  ", "icecream"},
		{"digits only", "123", ""},
		{"empty", "", ""},
		{"punctuation only", "?!...", ""},
		{"non-latin script dropped", "слово", ""},
		{"ligature decomposes", "ﬁsh", "fish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWord(tt.input); got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Normalization is a projection: re-applying it to its own output is a no-op.
func TestNormalizeWordIdempotent(t *testing.T) {
	inputs := []string{"Café-123!", "co-operate", "  Hello   World ", "naïve", "don't", "abc"}
	for _, s := range inputs {
		once := NormalizeWord(s)
		twice := NormalizeWord(once)
		if once != twice {
			t.Errorf("NormalizeWord not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestNormalizeWordOnlyLowercaseASCII(t *testing.T) {
	inputs := []string{"Résumé", "Ünïcödé wörd", "ABC-def_ghi", "x1y2z3"}
	for _, s := range inputs {
		key := NormalizeWord(s)
		for _, r := range key {
			if r < 'a' || r > 'z' {
				t.Errorf("NormalizeWord(%q) = %q contains non [a-z] rune %q", s, key, r)
			}
		}
	}
}
