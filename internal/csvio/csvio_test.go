package csvio

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undefine/dictionary-pipeline/internal/domain"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func TestParseIntLenient(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"42", 42},
		{"0", 0},
		{"-7", -7},
		{"", 0},
		{"abc", 0},
		{"4.5", 0},
		{" 3", 0}, // no trimming: the writer never emits padded numbers
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseIntLenient(tt.input), "input %q", tt.input)
	}
}

// Columns are addressed by header name, so a shuffled column order and a
// malformed entry_index must both be tolerated.
func TestReadRawEntries(t *testing.T) {
	entries, err := ReadRawEntries(testdataPath(t, "raw_sample.csv"))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, domain.RawEntry{
		SourceFile:   "wb1913_a.html",
		EntryIndex:   1,
		Word:         "Aardvark",
		PartOfSpeech: "n.",
		Definition:   "An edentate mammal of South Africa",
	}, entries[0])

	// Lenient parse: "not-a-number" becomes 0.
	assert.Equal(t, 0, entries[1].EntryIndex)
	assert.Equal(t, "Café", entries[1].Word)

	// Blank trailing fields read as empty strings.
	assert.Equal(t, "", entries[2].PartOfSpeech)
	assert.Equal(t, "", entries[2].Definition)
}

func TestReadRawEntriesMissingFile(t *testing.T) {
	_, err := ReadRawEntries(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestNormalizedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "normalized.csv")

	entries := []domain.NormalizedEntry{
		{
			SourceFile:      "wb1913_a.html",
			EntryIndex:      1,
			Word:            "Aard-vark",
			NormalizedWord:  "aardvark",
			PartOfSpeech:    "n.",
			Definition:      `An edentate mammal, the "earth pig"`,
			Etymology:       "",
			FirstLetter:     "a",
			NumberOfLetters: 8,
		},
		{
			SourceFile:      "wb1913_c.html",
			EntryIndex:      2,
			Word:            "Café",
			NormalizedWord:  "cafe",
			PartOfSpeech:    "n.",
			Definition:      "A coffee house,\nwith a line break",
			Etymology:       "from French café",
			FirstLetter:     "c",
			NumberOfLetters: 4,
		},
	}

	// Writer creates missing parent directories.
	require.NoError(t, WriteNormalizedEntries(path, entries))

	got, err := ReadNormalizedEntries(path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	header := strings.SplitN(string(data), "\n", 2)[0]
	assert.Equal(t,
		"source_file,entry_index,word,normalized_word,part_of_speech,definition,etymology,first_letter,number_of_letters",
		header)
}

func TestRankedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranked.csv")

	entries := []domain.RankedEntry{
		{
			NormalizedEntry: domain.NormalizedEntry{
				SourceFile: "a.html", EntryIndex: 1, Word: "apple",
				NormalizedWord: "apple", FirstLetter: "a", NumberOfLetters: 5,
			},
			LexRank: 1,
		},
		{
			NormalizedEntry: domain.NormalizedEntry{
				SourceFile: "a.html", EntryIndex: 2, Word: "banana",
				NormalizedWord: "banana", FirstLetter: "b", NumberOfLetters: 6,
			},
			LexRank: 2,
		},
	}

	require.NoError(t, WriteRankedEntries(path, entries))

	got, err := ReadRankedEntries(path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestWriteCollisionRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "collisions.csv")

	collisions := []domain.CollisionRecord{
		{
			NormalizedWord:    "run",
			KeptWord:          "Run",
			DroppedWord:       "run",
			KeptSourceFile:    "b.html",
			DroppedSourceFile: "a.html",
			KeptEntryIndex:    4,
			DroppedEntryIndex: 9,
		},
	}

	require.NoError(t, WriteCollisionRecords(path, collisions))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"normalized_word,kept_word,dropped_word,kept_source_file,dropped_source_file,kept_entry_index,dropped_entry_index",
		lines[0])
	assert.Equal(t, "run,Run,run,b.html,a.html,4,9", lines[1])
}

func TestWriteFinalEntriesDropsProvenance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "final.csv")

	entries := []domain.RankedEntry{
		{
			NormalizedEntry: domain.NormalizedEntry{
				SourceFile: "a.html", EntryIndex: 7, Word: "apple",
				NormalizedWord: "apple", PartOfSpeech: "n.", Definition: "a fruit",
				Etymology: "from Old English", FirstLetter: "a", NumberOfLetters: 5,
			},
			LexRank: 1,
		},
	}

	require.NoError(t, WriteFinalEntries(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"word,normalized_word,part_of_speech,definition,etymology,first_letter,number_of_letters,lex_rank",
		lines[0])
	assert.NotContains(t, lines[1], "a.html")
	assert.Equal(t, "apple,apple,n.,a fruit,from Old English,a,5,1", lines[1])
}

func TestReadEtymologyOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etymology.csv")
	content := "normalized_word,etymology\n" +
		"apple,  from Old English   æppel \n" +
		"banana,\n" +
		",orphaned value\n" +
		"cherry,from Old North French cherise\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	overlay, err := ReadEtymologyOverlay(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"apple":  "from Old English æppel",
		"cherry": "from Old North French cherise",
	}, overlay)
}
