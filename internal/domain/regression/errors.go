package regression

import "errors"

// Sentinel kinds for per-athlete fit failures. Each maps to a skip reason
// reported on the athlete's outcome.
var (
	ErrInsufficientTrials = errors.New("fewer than two valid trials")
	ErrDegenerateFit      = errors.New("degenerate force-velocity fit")
	ErrInvalidMass        = errors.New("invalid minimum body mass")
)
