package trial

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNoValidRows means validation dropped every input row; the run
	// cannot proceed and no partial results exist.
	ErrNoValidRows = errors.New("no valid trial rows after validation")
)
