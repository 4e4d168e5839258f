package services

import "errors"

// Service errors
var (
	// ErrNoMergedData is returned when neither summary.json nor the merged
	// table exists yet.
	ErrNoMergedData = errors.New("no merged dataset found; run the pipeline first")
)
