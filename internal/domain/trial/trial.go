// Package trial normalizes raw jump measurements into validated trial
// records and groups them per athlete.
package trial

import (
	"context"
	"math"

	"github.com/okian/fvprofile/internal/domain/model"
)

// Unit conversion constant.
const cmPerMeter = 100.0

// Validator converts raw rows into canonical trial records, dropping rows
// that fail the validation contract.
type Validator struct {
	allowNegativeLoad bool
}

// NewValidator creates a validator with configuration options.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate converts raw rows to trial records. Height and depth arrive in
// centimeters and are converted to meters; depth is absolute-valued since its
// recorded sign is irrelevant. A row survives only if its athlete id is
// non-empty, jump height and push-off depth are positive and finite, and body
// mass and additional load are finite. Negative load is rejected unless the
// validator was built with WithNegativeLoadAllowed.
//
// Invalid rows are dropped silently. If no row survives, ErrNoValidRows is
// returned: the whole input is unusable and the run must abort.
func (v *Validator) Validate(ctx context.Context, rows []model.RawRow) ([]model.TrialRecord, error) {
	trials := make([]model.TrialRecord, 0, len(rows))
	for _, row := range rows {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, ok := v.normalize(row)
		if !ok {
			continue
		}
		trials = append(trials, rec)
	}

	if len(trials) == 0 {
		return nil, ErrNoValidRows
	}
	return trials, nil
}

// normalize converts one row, reporting whether it passed validation.
func (v *Validator) normalize(row model.RawRow) (model.TrialRecord, bool) {
	if row.AthleteID == "" {
		return model.TrialRecord{}, false
	}

	heightM := row.JumpHeightCM / cmPerMeter
	depthM := math.Abs(row.DepthCM) / cmPerMeter

	if !isFinite(heightM) || heightM <= 0 {
		return model.TrialRecord{}, false
	}
	if !isFinite(depthM) || depthM <= 0 {
		return model.TrialRecord{}, false
	}
	if !isFinite(row.BodyMassKG) || !isFinite(row.LoadKG) {
		return model.TrialRecord{}, false
	}
	if row.LoadKG < 0 && !v.allowNegativeLoad {
		return model.TrialRecord{}, false
	}

	return model.TrialRecord{
		AthleteID:     row.AthleteID,
		BodyMassKG:    row.BodyMassKG,
		LoadKG:        row.LoadKG,
		JumpHeightM:   heightM,
		PushoffDepthM: depthM,
	}, true
}

// Set is one athlete's ordered trial collection.
type Set struct {
	AthleteID string
	Trials    []model.TrialRecord
}

// Group partitions validated trials per athlete, preserving the first-seen
// order of athlete ids and the input order of each athlete's trials.
func Group(trials []model.TrialRecord) []Set {
	index := make(map[string]int, len(trials))
	sets := make([]Set, 0)
	for _, rec := range trials {
		i, seen := index[rec.AthleteID]
		if !seen {
			i = len(sets)
			index[rec.AthleteID] = i
			sets = append(sets, Set{AthleteID: rec.AthleteID})
		}
		sets[i].Trials = append(sets[i].Trials, rec)
	}
	return sets
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
