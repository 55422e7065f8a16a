// Package csvio reads and writes the CSV files that connect pipeline stages.
// Each stage boundary has a fixed column contract; rows are addressed by
// header name so column order in hand-edited inputs does not matter.
// Numeric fields parse leniently: a malformed value becomes 0 instead of
// failing the run.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/undefine/dictionary-pipeline/internal/domain"
)

// Column contracts per stage boundary. The raw input contract
// (source_file, entry_index, word, part_of_speech, definition) is read by
// header name, so it needs no write-side column list.
var (
	normalizedColumns = []string{
		"source_file", "entry_index", "word", "normalized_word",
		"part_of_speech", "definition", "etymology", "first_letter", "number_of_letters",
	}

	rankedColumns = append(append([]string{}, normalizedColumns...), "lex_rank")

	collisionColumns = []string{
		"normalized_word", "kept_word", "dropped_word",
		"kept_source_file", "dropped_source_file", "kept_entry_index", "dropped_entry_index",
	}

	finalColumns = []string{
		"word", "normalized_word", "part_of_speech", "definition",
		"etymology", "first_letter", "number_of_letters", "lex_rank",
	}
)

// ParseIntLenient converts s to an int, returning 0 for anything unparsable.
func ParseIntLenient(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// row provides header-name access to a single CSV record.
type row struct {
	idx    map[string]int
	record []string
}

func (r row) get(column string) string {
	i, ok := r.idx[column]
	if !ok || i >= len(r.record) {
		return ""
	}
	return r.record[i]
}

func (r row) getInt(column string) int {
	return ParseIntLenient(r.get(column))
}

// readRows reads a headered CSV file into header-addressable rows.
// Ragged rows are tolerated; missing columns read as "".
func readRows(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // allow variable column count

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	idx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		idx[name] = i
	}

	rows := make([]row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, row{idx: idx, record: record})
	}
	return rows, nil
}

// writeRows writes a headered CSV file, creating parent directories as needed.
func writeRows(path string, header []string, records [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir for %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// ReadRawEntries reads the extractor's raw dictionary CSV.
func ReadRawEntries(path string) ([]domain.RawEntry, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RawEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, domain.RawEntry{
			SourceFile:   r.get("source_file"),
			EntryIndex:   r.getInt("entry_index"),
			Word:         r.get("word"),
			PartOfSpeech: r.get("part_of_speech"),
			Definition:   r.get("definition"),
		})
	}
	return entries, nil
}

// WriteNormalizedEntries writes the normalizer/resolver output CSV.
func WriteNormalizedEntries(path string, entries []domain.NormalizedEntry) error {
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, normalizedRecord(e))
	}
	return writeRows(path, normalizedColumns, records)
}

// ReadNormalizedEntries reads a normalized CSV back into entries.
func ReadNormalizedEntries(path string) ([]domain.NormalizedEntry, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.NormalizedEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, normalizedFromRow(r))
	}
	return entries, nil
}

// WriteRankedEntries writes the rank assigner's output CSV.
func WriteRankedEntries(path string, entries []domain.RankedEntry) error {
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, append(normalizedRecord(e.NormalizedEntry), strconv.Itoa(e.LexRank)))
	}
	return writeRows(path, rankedColumns, records)
}

// ReadRankedEntries reads a ranked CSV back into entries, preserving file order.
func ReadRankedEntries(path string) ([]domain.RankedEntry, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RankedEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, domain.RankedEntry{
			NormalizedEntry: normalizedFromRow(r),
			LexRank:         r.getInt("lex_rank"),
		})
	}
	return entries, nil
}

// WriteCollisionRecords writes the dedupe audit report CSV.
func WriteCollisionRecords(path string, collisions []domain.CollisionRecord) error {
	records := make([][]string, 0, len(collisions))
	for _, c := range collisions {
		records = append(records, []string{
			c.NormalizedWord,
			c.KeptWord,
			c.DroppedWord,
			c.KeptSourceFile,
			c.DroppedSourceFile,
			strconv.Itoa(c.KeptEntryIndex),
			strconv.Itoa(c.DroppedEntryIndex),
		})
	}
	return writeRows(path, collisionColumns, records)
}

// WriteFinalEntries writes the downstream import CSV: ranked entries projected
// onto gameplay columns, provenance (source_file, entry_index) dropped.
func WriteFinalEntries(path string, entries []domain.RankedEntry) error {
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, []string{
			e.Word,
			e.NormalizedWord,
			e.PartOfSpeech,
			e.Definition,
			e.Etymology,
			e.FirstLetter,
			strconv.Itoa(e.NumberOfLetters),
			strconv.Itoa(e.LexRank),
		})
	}
	return writeRows(path, finalColumns, records)
}

// ReadEtymologyOverlay reads a collaborator-produced etymology CSV
// (normalized_word, etymology) into a lookup map. Rows with an empty key or
// empty etymology are skipped; on duplicate keys the last row wins.
func ReadEtymologyOverlay(path string) (map[string]string, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	overlay := make(map[string]string, len(rows))
	for _, r := range rows {
		key := r.get("normalized_word")
		etymology := domain.CleanWhitespace(r.get("etymology"))
		if key == "" || etymology == "" {
			continue
		}
		overlay[key] = etymology
	}
	return overlay, nil
}

func normalizedRecord(e domain.NormalizedEntry) []string {
	return []string{
		e.SourceFile,
		strconv.Itoa(e.EntryIndex),
		e.Word,
		e.NormalizedWord,
		e.PartOfSpeech,
		e.Definition,
		e.Etymology,
		e.FirstLetter,
		strconv.Itoa(e.NumberOfLetters),
	}
}

func normalizedFromRow(r row) domain.NormalizedEntry {
	return domain.NormalizedEntry{
		SourceFile:      r.get("source_file"),
		EntryIndex:      r.getInt("entry_index"),
		Word:            r.get("word"),
		NormalizedWord:  r.get("normalized_word"),
		PartOfSpeech:    r.get("part_of_speech"),
		Definition:      r.get("definition"),
		Etymology:       r.get("etymology"),
		FirstLetter:     r.get("first_letter"),
		NumberOfLetters: r.getInt("number_of_letters"),
	}
}
