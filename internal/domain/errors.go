package domain

import "errors"

// Sentinel errors shared across pipeline stages.
var (
	// ErrEmptyDataset is returned when a stage reads zero data rows.
	// Per-row problems degrade to drops or defaults; an empty input is fatal.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrVerificationFailed is returned when the verifier finds at least one
	// invariant violation in a ranked dataset.
	ErrVerificationFailed = errors.New("verification failed")
)
