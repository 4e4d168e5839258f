package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Row-level and file-level pipeline errors. Row-level errors never reach the
// caller of an aggregator; they are counted and the row is filtered.
var (
	// ErrMissingYear marks an eruption row without a usable start year.
	ErrMissingYear = errors.New("missing year")
	// ErrInvalidDate marks a reconstructed or parsed date that is not a calendar date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrNonNumericSeverity marks a VEI value that was coerced to 0. The row is kept.
	ErrNonNumericSeverity = errors.New("non-numeric severity")
	// ErrSourceFileUnreadable aborts the run for the dataset it belongs to.
	ErrSourceFileUnreadable = errors.New("source file unreadable")
	// ErrEmptyAggregate is reported when a dataset yields no weekly rows.
	// It is informational: the pipeline still writes an empty, valid table.
	ErrEmptyAggregate = errors.New("empty aggregate")
	// ErrPresentationMissing is returned by the dashboard pre-flight check.
	ErrPresentationMissing = errors.New("presentation files missing")
)

// NewSourceError wraps a whole-file failure for a dataset.
func NewSourceError(dataset, path string, cause error) *AppError {
	return NewAppError(ErrTypeSource,
		fmt.Sprintf("cannot read %s source %s", dataset, path),
		fmt.Errorf("%w: %v", ErrSourceFileUnreadable, cause)).
		WithContext("dataset", dataset).
		WithContext("path", path)
}

// NewPresentationError reports dashboard assets that are absent on disk.
func NewPresentationError(dir string, missing []string) *AppError {
	return NewAppError(ErrTypePresentation,
		fmt.Sprintf("dashboard directory %s is missing: %s", dir, strings.Join(missing, ", ")),
		ErrPresentationMissing).
		WithContext("missing", missing)
}

// IsRowLevel reports whether err only disqualifies a single input row.
func IsRowLevel(err error) bool {
	return errors.Is(err, ErrMissingYear) || errors.Is(err, ErrInvalidDate)
}
