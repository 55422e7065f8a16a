// Package etymology merges a collaborator-produced etymology overlay into
// ranked entries. The overlay is a local file; this package never fetches
// anything.
package etymology

import (
	"slices"

	"github.com/undefine/dictionary-pipeline/internal/domain"
)

// Apply returns a copy of entries where every entry with an empty Etymology
// and an overlay value for its normalized word gets that value. Entries that
// arrive pre-filled keep what they have. The second return is the number of
// entries filled.
func Apply(entries []domain.RankedEntry, overlay map[string]string) ([]domain.RankedEntry, int) {
	if len(overlay) == 0 {
		return entries, 0
	}

	out := slices.Clone(entries)
	applied := 0
	for i := range out {
		if out[i].Etymology != "" {
			continue
		}
		if etymology, ok := overlay[out[i].NormalizedWord]; ok {
			out[i].Etymology = etymology
			applied++
		}
	}
	return out, applied
}
