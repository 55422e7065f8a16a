package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanWhitespace collapses all runs of whitespace to a single space and
// trims leading/trailing whitespace.
func CleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeWord reduces a headword to its canonical lookup key:
//   - collapse whitespace and trim
//   - lowercase (simple case folding, no locale)
//   - NFKD decomposition, so accented letters split into base letter + marks
//   - keep only a-z; everything else is dropped (combining marks, non-Latin
//     scripts, digits, hyphens, apostrophes, spaces)
//
// An empty result means the entry has no usable key and should be dropped.
//
// Policy note: stripping hyphens and apostrophes merges variants like
// "co-operate" into "cooperate". This is deliberate — the gameplay lookup
// table wants one row per letters-only spelling.
func NormalizeWord(raw string) string {
	lowered := strings.ToLower(CleanWhitespace(raw))
	decomposed := norm.NFKD.String(lowered)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
