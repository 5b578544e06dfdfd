package source

import "errors"

// Sentinel kinds for CSV loading errors.
var (
	ErrEmptyInput    = errors.New("input contains no header row")
	ErrMissingColumn = errors.New("required column missing from header")
)
