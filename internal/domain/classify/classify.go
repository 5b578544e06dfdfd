// Package classify maps an athlete's force-velocity imbalance onto a
// training-focus recommendation.
package classify

import (
	"math"

	"github.com/okian/fvprofile/internal/domain/model"
)

// Band edges for the imbalance percentage. The actual-to-optimal ratio reads
// as: well below 100% the athlete lacks force, well above 100% velocity.
const (
	highForceDeficitBelow  = 60.0
	lowForceDeficitBelow   = 90.0
	wellBalancedUpTo       = 110.0
	lowVelocityDeficitUpTo = 140.0
)

// FVIPercent computes the force-velocity imbalance as the absolute ratio of
// actual to optimal slope, in percent. It is defined only when the optimal
// slope is finite and nonzero; otherwise NaN.
func FVIPercent(slopePerKG, slopeOptPerKG float64) float64 {
	if math.IsNaN(slopeOptPerKG) || math.IsInf(slopeOptPerKG, 0) || slopeOptPerKG == 0 {
		return math.NaN()
	}
	return math.Abs(slopePerKG/slopeOptPerKG) * 100
}

// Classify maps an imbalance percentage to a recommendation. First matching
// band wins; NaN means the imbalance was undefined.
func Classify(fviPercent float64) model.Recommendation {
	switch {
	case math.IsNaN(fviPercent):
		return model.RecommendInsufficientData
	case fviPercent < highForceDeficitBelow:
		return model.RecommendHighForceDeficit
	case fviPercent < lowForceDeficitBelow:
		return model.RecommendLowForceDeficit
	case fviPercent <= wellBalancedUpTo:
		return model.RecommendWellBalanced
	case fviPercent <= lowVelocityDeficitUpTo:
		return model.RecommendLowVelocityDeficit
	default:
		return model.RecommendHighVelocityDeficit
	}
}
