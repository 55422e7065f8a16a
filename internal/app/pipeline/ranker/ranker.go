// Package ranker imposes the final total order over normalized entries and
// assigns each a dense 1-based lexicographic rank.
package ranker

import (
	"slices"
	"sort"

	"github.com/undefine/dictionary-pipeline/internal/domain"
)

// Assign sorts entries by (normalized_word, word, source_file, entry_index)
// using byte-wise comparison and assigns lex_rank = position + 1. The chain
// ends on (source_file, entry_index), which uniquely identifies the original
// row, so the order is total even when dedupe was disabled and normalized
// words repeat. Re-running Assign on its own output reproduces the ranks.
func Assign(entries []domain.NormalizedEntry) []domain.RankedEntry {
	sorted := slices.Clone(entries)
	sort.Slice(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	ranked := make([]domain.RankedEntry, len(sorted))
	for i, e := range sorted {
		ranked[i] = domain.RankedEntry{NormalizedEntry: e, LexRank: i + 1}
	}
	return ranked
}

func less(a, b domain.NormalizedEntry) bool {
	if a.NormalizedWord != b.NormalizedWord {
		return a.NormalizedWord < b.NormalizedWord
	}
	if a.Word != b.Word {
		return a.Word < b.Word
	}
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	return a.EntryIndex < b.EntryIndex
}
