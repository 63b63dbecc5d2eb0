package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the offer engine.
var (
	// ErrInvalidRequest indicates the search request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRequiredDataMissing indicates reference data needed to generate
	// offers (airports, airlines, airplanes, stays) is unavailable or empty.
	// A search that hits it fails as a whole; it is never downgraded to an
	// empty result.
	ErrRequiredDataMissing = errors.New("required data not found")

	// ErrVersionConflict indicates an optimistic-concurrency violation: the
	// stored version no longer matches the version the writer last read.
	// Retryable after the caller re-reads the latest state.
	ErrVersionConflict = errors.New("version conflict")

	// ErrDuplicateHash indicates a uniqueness violation on a first-time
	// creation: another writer persisted a row with the same content hash
	// concurrently. Not retryable as-is; the writer must re-resolve the row
	// by a fresh content-hash lookup.
	ErrDuplicateHash = errors.New("duplicate content hash")
)

// MissingDataError reports which reference dataset was unavailable.
type MissingDataError struct {
	Dataset string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("required data not found: %s", e.Dataset)
}

// Unwrap makes the error match ErrRequiredDataMissing via errors.Is.
func (e *MissingDataError) Unwrap() error {
	return ErrRequiredDataMissing
}

// NewMissingDataError creates a MissingDataError for the given dataset name.
func NewMissingDataError(dataset string) error {
	return &MissingDataError{Dataset: dataset}
}

// IsVersionConflict reports whether err is a retryable optimistic-concurrency
// violation.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}

// IsDuplicateHash reports whether err is a first-time-creation uniqueness
// violation.
func IsDuplicateHash(err error) bool {
	return errors.Is(err, ErrDuplicateHash)
}
