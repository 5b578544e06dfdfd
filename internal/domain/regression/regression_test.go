package regression_test

import (
	"math"
	"testing"

	model "github.com/okian/fvprofile/internal/domain/model"
	regression "github.com/okian/fvprofile/internal/domain/regression"
	. "github.com/smartystreets/goconvey/convey"
)

// trialAt builds a derived trial with the given mean velocity and force.
func trialAt(mass, velocity, force float64) model.DerivedTrial {
	return model.DerivedTrial{
		TrialRecord:    model.TrialRecord{AthleteID: "a", BodyMassKG: mass},
		MeanVelocityMS: velocity,
		MeanForceN:     force,
	}
}

func TestFitTrials(t *testing.T) {
	Convey("Given three perfectly collinear trials", t, func() {
		trials := []model.DerivedTrial{
			trialAt(80, 1.0, 2800),
			trialAt(80, 1.5, 2600),
			trialAt(80, 2.0, 2400),
		}

		Convey("When fitting", func() {
			fit, err := regression.FitTrials(trials)

			Convey("Then the line is recovered exactly", func() {
				So(err, ShouldBeNil)
				So(fit.SlopeActual, ShouldAlmostEqual, -400)
				So(fit.ForceAtZeroN, ShouldAlmostEqual, 3200)
				So(fit.RSquared, ShouldAlmostEqual, 1.0)
			})

			Convey("And V0 and Pmax satisfy the model identities", func() {
				So(fit.VelocityAtZeroMS, ShouldAlmostEqual, -fit.ForceAtZeroN/fit.SlopeActual, 1e-9)
				So(fit.MaxPowerW, ShouldAlmostEqual, fit.ForceAtZeroN*fit.VelocityAtZeroMS/4, 1e-9)
				So(fit.VelocityAtZeroMS, ShouldAlmostEqual, 8.0)
				So(fit.MaxPowerW, ShouldAlmostEqual, 6400)
			})

			Convey("And per-kg quantities use the minimum body mass", func() {
				So(fit.MassMinKG, ShouldAlmostEqual, 80)
				So(fit.SlopePerKG, ShouldAlmostEqual, -5.0)
				So(fit.MaxPowerPerKG, ShouldAlmostEqual, 80)
			})
		})
	})

	Convey("Given noisy trials", t, func() {
		trials := []model.DerivedTrial{
			trialAt(70, 1.0, 2810),
			trialAt(70, 1.5, 2580),
			trialAt(70, 2.0, 2415),
			trialAt(70, 2.5, 2190),
		}

		Convey("When fitting", func() {
			fit, err := regression.FitTrials(trials)

			Convey("Then the slope is negative with sub-perfect r-squared", func() {
				So(err, ShouldBeNil)
				So(fit.SlopeActual, ShouldBeLessThan, 0)
				So(fit.RSquared, ShouldBeGreaterThan, 0.9)
				So(fit.RSquared, ShouldBeLessThan, 1.0)
			})
		})
	})

	Convey("Given a single trial", t, func() {
		trials := []model.DerivedTrial{trialAt(70, 1.2, 2500)}

		Convey("When fitting", func() {
			_, err := regression.FitTrials(trials)

			Convey("Then it fails with ErrInsufficientTrials", func() {
				So(err, ShouldEqual, regression.ErrInsufficientTrials)
			})
		})
	})

	Convey("Given trials at identical velocities", t, func() {
		trials := []model.DerivedTrial{
			trialAt(70, 1.5, 2500),
			trialAt(70, 1.5, 2600),
		}

		Convey("When fitting", func() {
			_, err := regression.FitTrials(trials)

			Convey("Then the fit is degenerate", func() {
				So(err, ShouldEqual, regression.ErrDegenerateFit)
			})
		})
	})

	Convey("Given trials at identical forces", t, func() {
		trials := []model.DerivedTrial{
			trialAt(70, 1.0, 2500),
			trialAt(70, 2.0, 2500),
		}

		Convey("When fitting", func() {
			_, err := regression.FitTrials(trials)

			Convey("Then the flat line is rejected as degenerate", func() {
				So(err, ShouldEqual, regression.ErrDegenerateFit)
			})
		})
	})

	Convey("Given trials with a non-positive minimum body mass", t, func() {
		trials := []model.DerivedTrial{
			trialAt(0, 1.0, 2800),
			trialAt(75, 1.5, 2600),
		}

		Convey("When fitting", func() {
			_, err := regression.FitTrials(trials)

			Convey("Then it fails with ErrInvalidMass", func() {
				So(err, ShouldEqual, regression.ErrInvalidMass)
			})
		})
	})

	Convey("Given trials with NaN body mass", t, func() {
		trials := []model.DerivedTrial{
			trialAt(math.NaN(), 1.0, 2800),
			trialAt(math.NaN(), 1.5, 2600),
		}

		Convey("When fitting", func() {
			_, err := regression.FitTrials(trials)

			Convey("Then it fails with ErrInvalidMass", func() {
				So(err, ShouldEqual, regression.ErrInvalidMass)
			})
		})
	})
}
