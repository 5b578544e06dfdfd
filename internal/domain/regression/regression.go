// Package regression fits the linear force-velocity relationship for one
// athlete and derives the mechanical quantities of the linear F-V model.
package regression

import (
	"math"

	"github.com/okian/fvprofile/internal/domain/model"
)

// MinTrials is the smallest trial count a line can be fitted through.
const MinTrials = 2

// Fit holds the fitted force-velocity relationship and its derived
// quantities for one athlete.
type Fit struct {
	ForceAtZeroN     float64 // F0: fitted intercept
	SlopeActual      float64 // N*s/m, expected negative
	VelocityAtZeroMS float64 // V0 = -F0/slope
	MaxPowerW        float64 // Pmax = F0*V0/4
	RSquared         float64

	MassMinKG     float64 // minimum body mass, proxy for unloaded body weight
	SlopePerKG    float64
	MaxPowerPerKG float64
}

// FitTrials performs an ordinary least-squares fit of mean force as a linear
// function of mean velocity over the athlete's derived trials.
//
// Fewer than MinTrials trials fail with ErrInsufficientTrials. A non-finite
// or zero slope (no force-velocity trade-off to profile) fails with
// ErrDegenerateFit. A non-finite or non-positive minimum body mass fails with
// ErrInvalidMass. All three skip the athlete without aborting the run.
func FitTrials(trials []model.DerivedTrial) (Fit, error) {
	if len(trials) < MinTrials {
		return Fit{}, ErrInsufficientTrials
	}

	var sumX, sumY, sumXY, sumXX float64
	n := float64(len(trials))
	for _, t := range trials {
		sumX += t.MeanVelocityMS
		sumY += t.MeanForceN
		sumXY += t.MeanVelocityMS * t.MeanForceN
		sumXX += t.MeanVelocityMS * t.MeanVelocityMS
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n
	if !isFinite(slope) || !isFinite(intercept) || slope == 0 {
		return Fit{}, ErrDegenerateFit
	}

	massMin := math.Inf(1)
	for _, t := range trials {
		if t.BodyMassKG < massMin {
			massMin = t.BodyMassKG
		}
	}
	if !isFinite(massMin) || massMin <= 0 {
		return Fit{}, ErrInvalidMass
	}

	v0 := -intercept / slope
	pmax := intercept * v0 / 4

	return Fit{
		ForceAtZeroN:     intercept,
		SlopeActual:      slope,
		VelocityAtZeroMS: v0,
		MaxPowerW:        pmax,
		RSquared:         rSquared(trials, slope, intercept),
		MassMinKG:        massMin,
		SlopePerKG:       slope / massMin,
		MaxPowerPerKG:    pmax / massMin,
	}, nil
}

// rSquared computes the coefficient of determination of the fit. A dataset
// with zero force variance is a perfect fit of the flat line.
func rSquared(trials []model.DerivedTrial, slope, intercept float64) float64 {
	var meanY float64
	for _, t := range trials {
		meanY += t.MeanForceN
	}
	meanY /= float64(len(trials))

	var ssRes, ssTot float64
	for _, t := range trials {
		predicted := intercept + slope*t.MeanVelocityMS
		ssRes += (t.MeanForceN - predicted) * (t.MeanForceN - predicted)
		ssTot += (t.MeanForceN - meanY) * (t.MeanForceN - meanY)
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
