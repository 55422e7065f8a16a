// Package normalizer turns raw dictionary rows into normalized entries.
// Pure function: rows in, entries plus drop counts out. Rows whose headword
// yields no canonical key are dropped, never an error.
package normalizer

import (
	"github.com/undefine/dictionary-pipeline/internal/domain"
)

// Stats holds normalization counters for logging.
type Stats struct {
	Input           int
	Output          int
	DroppedEmpty    int
	DroppedNonAlpha int
}

// Normalize converts raw rows into normalized entries, preserving input order.
// A row is dropped when its headword normalizes to the empty string. The
// non-alpha re-check is defensive: NormalizeWord already filters to a-z, so
// DroppedNonAlpha should stay zero.
func Normalize(raws []domain.RawEntry) ([]domain.NormalizedEntry, Stats) {
	stats := Stats{Input: len(raws)}

	entries := make([]domain.NormalizedEntry, 0, len(raws))
	for _, raw := range raws {
		normalized := domain.NormalizeWord(raw.Word)
		if normalized == "" {
			stats.DroppedEmpty++
			continue
		}
		if !isLowerAlpha(normalized) {
			stats.DroppedNonAlpha++
			continue
		}

		entries = append(entries, domain.NormalizedEntry{
			SourceFile:      raw.SourceFile,
			EntryIndex:      raw.EntryIndex,
			Word:            domain.CleanWhitespace(raw.Word),
			NormalizedWord:  normalized,
			PartOfSpeech:    domain.CleanWhitespace(raw.PartOfSpeech),
			Definition:      domain.CleanWhitespace(raw.Definition),
			Etymology:       "",
			FirstLetter:     normalized[:1],
			NumberOfLetters: len(normalized),
		})
	}

	stats.Output = len(entries)
	return entries, stats
}

func isLowerAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
