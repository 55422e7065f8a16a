// Package verifier re-checks a ranked dataset against every structural
// invariant the earlier stages are supposed to guarantee. It has no write
// access and never short-circuits: one full pass collects all violations.
package verifier

import (
	"fmt"
	"regexp"

	"github.com/undefine/dictionary-pipeline/internal/domain"
)

// DefaultReportLimit caps how many violations Render emits before
// summarizing the remainder.
const DefaultReportLimit = 50

var keyRe = regexp.MustCompile(`^[a-z]+$`)

// Report holds every violation found in a single verification pass.
type Report struct {
	Rows       int
	Violations []string
}

// OK reports whether the dataset passed all checks.
func (r Report) OK() bool {
	return len(r.Violations) == 0
}

// Render returns at most limit violation strings, followed by a remainder
// line when more were found. A non-positive limit falls back to
// DefaultReportLimit.
func (r Report) Render(limit int) []string {
	if limit <= 0 {
		limit = DefaultReportLimit
	}
	if len(r.Violations) <= limit {
		return r.Violations
	}

	out := make([]string, 0, limit+1)
	out = append(out, r.Violations[:limit]...)
	out = append(out, fmt.Sprintf("... %d more", len(r.Violations)-limit))
	return out
}

// Verify walks entries in file order (ascending lex_rank when the ranker
// produced them) and collects every invariant violation:
//
//   - normalized_word matches ^[a-z]+$
//   - first_letter equals normalized_word[0]
//   - number_of_letters equals len(normalized_word)
//   - no duplicate lex_rank values
//   - normalized_word is non-decreasing along the walk
//   - the lex_rank set is exactly {1..N}
//
// Duplicate normalized words are not a violation: a dedupe-disabled dataset
// legitimately contains them, and the ordering check allows equal keys.
func Verify(entries []domain.RankedEntry) Report {
	report := Report{Rows: len(entries)}

	seenRanks := make(map[int]bool, len(entries))
	lastWord := ""
	haveLast := false

	for i, e := range entries {
		rowNum := i + 1

		if e.NormalizedWord == "" {
			report.add("row %d: normalized_word empty", rowNum)
		} else if !keyRe.MatchString(e.NormalizedWord) {
			report.add("row %d: normalized_word contains non [a-z]: %q", rowNum, e.NormalizedWord)
		}

		if e.NormalizedWord != "" {
			if e.FirstLetter != e.NormalizedWord[:1] {
				report.add("row %d: first_letter mismatch: %q vs %q", rowNum, e.FirstLetter, e.NormalizedWord[:1])
			}
			if e.NumberOfLetters != len(e.NormalizedWord) {
				report.add("row %d: number_of_letters mismatch: %d vs %d", rowNum, e.NumberOfLetters, len(e.NormalizedWord))
			}
		}

		if seenRanks[e.LexRank] {
			report.add("row %d: duplicate lex_rank: %d", rowNum, e.LexRank)
		}
		seenRanks[e.LexRank] = true

		// Ordering check skips rows with an empty key; their emptiness is
		// already reported above.
		if e.NormalizedWord != "" {
			if haveLast && e.NormalizedWord < lastWord {
				report.add("row %d: ordering violation: %q < %q", rowNum, e.NormalizedWord, lastWord)
			}
			lastWord = e.NormalizedWord
			haveLast = true
		}
	}

	// The rank multiset must equal {1..N} exactly; this catches gaps and
	// out-of-range ranks that the pairwise checks miss.
	contiguous := len(seenRanks) == len(entries)
	for rank := 1; rank <= len(entries) && contiguous; rank++ {
		contiguous = seenRanks[rank]
	}
	if len(entries) > 0 && !contiguous {
		report.add("lex_rank is not a contiguous 1..%d set", len(entries))
	}

	return report
}

func (r *Report) add(format string, args ...any) {
	r.Violations = append(r.Violations, fmt.Sprintf(format, args...))
}
