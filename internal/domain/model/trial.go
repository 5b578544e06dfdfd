// Package model contains domain models passed between layers.
package model

// RawRow is one unvalidated input row as delivered by a loader collaborator.
// Height and depth arrive in centimeters, masses in kilograms. Numeric fields
// that could not be parsed upstream carry NaN so validation drops the row.
type RawRow struct {
	AthleteID    string
	BodyMassKG   float64
	LoadKG       float64 // additional load; 0 means unloaded
	JumpHeightCM float64
	DepthCM      float64 // countermovement depth; sign irrelevant
}

// TrialRecord is a validated jump trial in canonical SI units.
// All numeric fields are finite; height and depth are strictly positive.
type TrialRecord struct {
	AthleteID     string
	BodyMassKG    float64
	LoadKG        float64
	JumpHeightM   float64
	PushoffDepthM float64
}

// DerivedTrial extends a TrialRecord with per-trial kinematics computed
// against the athlete's median push-off depth.
type DerivedTrial struct {
	TrialRecord

	TotalMassKG    float64 // body mass + additional load
	TakeoffVelMS   float64 // sqrt(2*g*h)
	MeanVelocityMS float64 // takeoff velocity / 2
	MeanAccelMS2   float64 // takeoff velocity^2 / (2 * median depth)
	MeanForceN     float64 // total mass * (g + mean acceleration)
}

// Recommendation is the training-focus category derived from the
// force-velocity imbalance percentage.
type Recommendation string

// Recommendation labels, ordered from force-deficient to velocity-deficient.
const (
	RecommendInsufficientData    Recommendation = "Insufficient Data"
	RecommendHighForceDeficit    Recommendation = "High Force Deficit"
	RecommendLowForceDeficit     Recommendation = "Low Force Deficit"
	RecommendWellBalanced        Recommendation = "Well Balanced"
	RecommendLowVelocityDeficit  Recommendation = "Low Velocity Deficit"
	RecommendHighVelocityDeficit Recommendation = "High Velocity Deficit"
)

// AthleteProfile is the per-athlete result of one analysis run.
// It is created once and never mutated.
type AthleteProfile struct {
	AthleteID        string         `json:"athlete_id"`
	BodyMassKG       float64        `json:"body_mass_kg"` // mean across trials
	DepthMedM        float64        `json:"depth_med_m"`
	ForceAtZeroN     float64        `json:"force_at_zero_n"`     // F0
	VelocityAtZeroMS float64        `json:"velocity_at_zero_ms"` // V0
	MaxPowerW        float64        `json:"max_power_w"`         // Pmax
	SlopeActual      float64        `json:"slope_actual"`        // N*s/m
	SlopePerKG       float64        `json:"slope_per_kg"`
	SlopeOptPerKG    float64        `json:"slope_opt_per_kg"`
	FVIPercent       float64        `json:"fvi_percent"`
	RSquared         float64        `json:"r_squared"`
	Recommendation   Recommendation `json:"recommendation"`
}

// SkipReason enumerates why an athlete produced no profile.
type SkipReason string

const (
	SkipInsufficientTrials SkipReason = "insufficient_trials"
	SkipDegenerateFit      SkipReason = "degenerate_fit"
	SkipInvalidMass        SkipReason = "invalid_mass"
)

// Condition annotates a profile that was still emitted despite a defect.
type Condition string

// CondInsufficientOptimalSlopeInputs marks a profile whose optimal-slope
// inputs were not finite and positive; its recommendation is forced to
// Insufficient Data but F0/V0/Pmax/slope are still reported.
const CondInsufficientOptimalSlopeInputs Condition = "insufficient_optimal_slope_inputs"

// Outcome is the per-athlete result of a run: either a profile (possibly
// annotated with a Condition) or a skip reason. Exactly one of Profile and
// Skip is set.
type Outcome struct {
	AthleteID string
	Profile   *AthleteProfile
	Skip      SkipReason
	Condition Condition

	// Trials holds the derived trials backing the profile, exposed for
	// rendering collaborators (force-velocity scatter plus fitted line).
	// Nil when the athlete was skipped.
	Trials []DerivedTrial
}

// Skipped reports whether the athlete produced no profile.
func (o Outcome) Skipped() bool {
	return o.Profile == nil
}
