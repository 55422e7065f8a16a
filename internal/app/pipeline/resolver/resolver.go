// Package resolver deduplicates normalized entries that share a canonical
// key. The policy is an online fold with no lookahead: the entry with the
// longer trimmed definition survives, and the incumbent survives ties
// (first-seen-wins). Every collision emits one audit record in discovery
// order, whichever side loses.
package resolver

import (
	"strings"

	"github.com/undefine/dictionary-pipeline/internal/domain"
)

// State is the accumulator of the collision fold: the currently kept entry
// per normalized word plus the collision log. Advancing it one entry at a
// time gives identical results to a batch run over the same input order.
type State struct {
	kept       map[string]domain.NormalizedEntry
	order      []string
	collisions []domain.CollisionRecord
}

// NewState returns an empty fold state.
func NewState() *State {
	return &State{kept: make(map[string]domain.NormalizedEntry)}
}

// Reduce advances the fold by one entry.
func (s *State) Reduce(entry domain.NormalizedEntry) {
	key := entry.NormalizedWord

	existing, ok := s.kept[key]
	if !ok {
		s.kept[key] = entry
		s.order = append(s.order, key)
		return
	}

	// Longer trimmed definition wins; the incumbent wins ties.
	kept, dropped := existing, entry
	if defLen(entry) > defLen(existing) {
		kept, dropped = entry, existing
	}
	s.kept[key] = kept

	s.collisions = append(s.collisions, domain.CollisionRecord{
		NormalizedWord:    key,
		KeptWord:          kept.Word,
		DroppedWord:       dropped.Word,
		KeptSourceFile:    kept.SourceFile,
		DroppedSourceFile: dropped.SourceFile,
		KeptEntryIndex:    kept.EntryIndex,
		DroppedEntryIndex: dropped.EntryIndex,
	})
}

// Entries returns the kept set in first-seen key order, so output files are
// byte-identical across runs with the same input order.
func (s *State) Entries() []domain.NormalizedEntry {
	entries := make([]domain.NormalizedEntry, 0, len(s.order))
	for _, key := range s.order {
		entries = append(entries, s.kept[key])
	}
	return entries
}

// Collisions returns the audit log in discovery order.
func (s *State) Collisions() []domain.CollisionRecord {
	return s.collisions
}

// Resolve folds entries into a deduplicated kept set plus the collision log.
// With dedupe disabled every entry passes through unchanged and no
// collisions are recorded; the dataset may then contain duplicate keys.
func Resolve(entries []domain.NormalizedEntry, dedupe bool) ([]domain.NormalizedEntry, []domain.CollisionRecord) {
	if !dedupe {
		return entries, nil
	}

	state := NewState()
	for _, entry := range entries {
		state.Reduce(entry)
	}
	return state.Entries(), state.Collisions()
}

func defLen(e domain.NormalizedEntry) int {
	return len(strings.TrimSpace(e.Definition))
}
