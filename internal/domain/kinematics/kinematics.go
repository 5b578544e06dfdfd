// Package kinematics converts validated jump trials into mean concentric
// velocity and force using the impulse-momentum relations of Samozino's
// ballistic method. All distances are in meters, velocities in m/s, forces
// in newtons.
package kinematics

import (
	"math"
	"sort"

	"github.com/okian/fvprofile/internal/domain/model"
)

// Gravity is the gravitational acceleration used throughout the pipeline (m/s^2).
const Gravity = 9.81

// Derive computes per-trial kinematics for one athlete's trial group.
//
// The push-off depth of every trial is first overwritten with the group
// median: push-off distance is modeled as constant per athlete across loads.
// Derived trials with non-finite mean velocity or force are dropped.
// The returned depth is the applied median.
func Derive(trials []model.TrialRecord) ([]model.DerivedTrial, float64) {
	if len(trials) == 0 {
		return nil, math.NaN()
	}

	depths := make([]float64, len(trials))
	for i, t := range trials {
		depths[i] = t.PushoffDepthM
	}
	depthMed := Median(depths)

	derived := make([]model.DerivedTrial, 0, len(trials))
	for _, t := range trials {
		t.PushoffDepthM = depthMed

		totalMass := t.BodyMassKG + t.LoadKG
		takeoffVel := math.Sqrt(2 * Gravity * t.JumpHeightM)
		meanVel := takeoffVel / 2
		meanAccel := takeoffVel * takeoffVel / (2 * depthMed)
		meanForce := totalMass * (Gravity + meanAccel)

		if !isFinite(meanVel) || !isFinite(meanForce) {
			continue
		}

		derived = append(derived, model.DerivedTrial{
			TrialRecord:    t,
			TotalMassKG:    totalMass,
			TakeoffVelMS:   takeoffVel,
			MeanVelocityMS: meanVel,
			MeanAccelMS2:   meanAccel,
			MeanForceN:     meanForce,
		})
	}

	return derived, depthMed
}

// Median returns the standard median of values: the middle element for odd
// counts, the mean of the two middle elements for even counts. The input
// slice is not modified. Returns NaN for an empty input.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
