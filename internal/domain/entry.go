package domain

// RawEntry is a dictionary row as extracted from the source markup.
// EntryIndex is the row's position within its source file; it carries no
// meaning beyond deterministic tie-breaking.
type RawEntry struct {
	SourceFile   string
	EntryIndex   int
	Word         string
	PartOfSpeech string
	Definition   string
}

// NormalizedEntry is a RawEntry whose headword survived normalization.
// NormalizedWord is the canonical lookup key: non-empty, lowercase ASCII
// letters only. FirstLetter and NumberOfLetters are derived from it.
type NormalizedEntry struct {
	SourceFile      string
	EntryIndex      int
	Word            string
	NormalizedWord  string
	PartOfSpeech    string
	Definition      string
	Etymology       string
	FirstLetter     string
	NumberOfLetters int
}

// CollisionRecord is an audit row produced when two entries reduce to the
// same normalized word. Records are emitted in discovery order.
type CollisionRecord struct {
	NormalizedWord    string
	KeptWord          string
	DroppedWord       string
	KeptSourceFile    string
	DroppedSourceFile string
	KeptEntryIndex    int
	DroppedEntryIndex int
}

// RankedEntry is a NormalizedEntry with its final 1-based lexicographic rank.
type RankedEntry struct {
	NormalizedEntry
	LexRank int
}
