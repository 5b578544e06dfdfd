// Package optimal solves Samozino's optimization for the force-velocity
// slope that maximizes jump height at a fixed push-off distance. The
// optimum is the real root of a depressed cubic with a closed-form solution.
package optimal

import (
	"math"

	"github.com/okian/fvprofile/internal/domain/kinematics"
)

const gravity = kinematics.Gravity

// SlopePerKG computes the theoretically optimal force-velocity slope per kg
// for push-off distance s (m) and maximal power per kg p (W/kg).
//
// The result is defined only for finite, positive s and p; otherwise NaN is
// returned and propagates downstream as Insufficient Data. The returned
// slope is forced negative: a physically meaningful F-V slope always is, and
// the absolute-value-then-negate step guards against sign artifacts from the
// cube-root branch choice.
func SlopePerKG(s, p float64) float64 {
	if !isFinite(s) || s <= 0 || !isFinite(p) || p <= 0 {
		return math.NaN()
	}

	g3 := gravity * gravity * gravity

	// Non-negative for s,p > 0, so the square root stays real.
	radicalInner := 2*g3*math.Pow(s, 9)*math.Pow(p, 6) + 27*math.Pow(s, 8)*math.Pow(p, 8)
	radical := 6 * math.Sqrt(3) * math.Sqrt(radicalInner)

	xInput := -math.Pow(gravity, 6)*math.Pow(s, 6) -
		18*g3*math.Pow(s, 5)*p*p -
		54*math.Pow(s, 4)*math.Pow(p, 4) +
		radical
	x := SignedCbrt(xInput)
	if x == 0 {
		// Degenerate inputs only; the next expression would divide by zero.
		return math.NaN()
	}

	tmp := -gravity*gravity/(3*p) -
		(-math.Pow(gravity, 4)*math.Pow(s, 4)-12*gravity*math.Pow(s, 3)*p*p)/(3*s*s*p*x) +
		x/(3*s*s*p)

	return -math.Abs(tmp)
}

// SignedCbrt returns the real cube root of v with its sign preserved: the
// cube root of |v| carrying the original sign. Taking the principal complex
// root of a negative radicand is the classic transcription bug in this
// solver, so the operation is kept explicit and named.
func SignedCbrt(v float64) float64 {
	return math.Copysign(math.Cbrt(math.Abs(v)), v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
