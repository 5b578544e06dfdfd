// Package app orchestrates the profiling pipeline: validation, per-athlete
// kinematics and regression, optimal-slope comparison, and classification.
package app

import (
	"context"
	"errors"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/okian/fvprofile/internal/adapters/batch"
	"github.com/okian/fvprofile/internal/adapters/results"
	"github.com/okian/fvprofile/internal/domain/classify"
	"github.com/okian/fvprofile/internal/domain/kinematics"
	"github.com/okian/fvprofile/internal/domain/model"
	"github.com/okian/fvprofile/internal/domain/optimal"
	"github.com/okian/fvprofile/internal/domain/regression"
	"github.com/okian/fvprofile/internal/domain/trial"
	"github.com/okian/fvprofile/pkg/logger"
	"github.com/okian/fvprofile/pkg/metrics"
)

// Service runs force-velocity analysis over raw trial rows.
type Service struct {
	validator         *trial.Validator
	workers           int
	order             results.Order
	allowNegativeLoad bool
	logger            logger.Logger
}

// NewService creates an analysis service with configuration options.
func NewService(opts ...Option) *Service {
	s := &Service{
		workers: runtime.NumCPU(),
		order:   results.OrderInput,
		logger:  logger.Get().Named("app"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.validator = trial.NewValidator(trial.WithNegativeLoadAllowed(s.allowNegativeLoad))
	return s
}

// Analyze validates rows, groups them per athlete, and profiles each group
// on a worker pool. One outcome is returned per athlete; the slice order is
// controlled by the configured result order. The only fatal condition is an
// input with no valid rows.
func (s *Service) Analyze(ctx context.Context, rows []model.RawRow) ([]model.Outcome, error) {
	runID := uuid.NewString()
	log := s.logger.Named(runID[:8])

	metrics.RecordRowsIngested(len(rows))

	valid, err := s.validator.Validate(ctx, rows)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(rows)-len(valid); i++ {
		metrics.RecordRowDropped()
	}

	sets := trial.Group(valid)
	log.Info(ctx, "starting analysis run",
		logger.String("run_id", runID),
		logger.Int("rows", len(rows)),
		logger.Int("valid_rows", len(valid)),
		logger.Int("athletes", len(sets)),
		logger.Int("workers", s.workers),
	)

	store := results.NewMemoryStore(results.WithOrder(s.order))
	pool := batch.NewPool(s.workers, s.profileGroup, store, batch.WithLogger(log))
	pool.Run(ctx, sets)

	outcomes := store.Snapshot(ctx)
	metrics.RecordRunCompleted()

	profiled := 0
	for _, o := range outcomes {
		if !o.Skipped() {
			profiled++
		}
	}
	log.Info(ctx, "analysis run complete",
		logger.String("run_id", runID),
		logger.Int("profiled", profiled),
		logger.Int("skipped", len(outcomes)-profiled),
	)
	return outcomes, nil
}

// profileGroup derives one athlete's profile. Fit failures produce a skip
// outcome rather than an error; a failed optimal-slope computation still
// emits the profile, annotated and classified as Insufficient Data.
func (s *Service) profileGroup(ctx context.Context, set trial.Set) model.Outcome {
	start := time.Now()

	derived, depthMed := kinematics.Derive(set.Trials)
	fit, err := regression.FitTrials(derived)
	if err != nil {
		reason := skipReason(err)
		s.logger.Debug(ctx, "athlete skipped",
			logger.String("athlete_id", set.AthleteID),
			logger.String("reason", string(reason)),
		)
		metrics.RecordAthleteSkipped(string(reason))
		return model.Outcome{AthleteID: set.AthleteID, Skip: reason}
	}

	slopeOpt := optimal.SlopePerKG(depthMed, fit.MaxPowerPerKG)
	fvi := classify.FVIPercent(fit.SlopePerKG, slopeOpt)
	rec := classify.Classify(fvi)

	var cond model.Condition
	if math.IsNaN(slopeOpt) {
		cond = model.CondInsufficientOptimalSlopeInputs
	}

	profile := &model.AthleteProfile{
		AthleteID:        set.AthleteID,
		BodyMassKG:       meanBodyMass(derived),
		DepthMedM:        depthMed,
		ForceAtZeroN:     fit.ForceAtZeroN,
		VelocityAtZeroMS: fit.VelocityAtZeroMS,
		MaxPowerW:        fit.MaxPowerW,
		SlopeActual:      fit.SlopeActual,
		SlopePerKG:       fit.SlopePerKG,
		SlopeOptPerKG:    slopeOpt,
		FVIPercent:       fvi,
		RSquared:         fit.RSquared,
		Recommendation:   rec,
	}

	metrics.RecordAthleteProfiled()
	if !math.IsNaN(fvi) {
		metrics.ObserveFVIPercent(fvi)
	}
	metrics.ObserveAthleteLatency(float64(time.Since(start).Milliseconds()))

	return model.Outcome{
		AthleteID: set.AthleteID,
		Profile:   profile,
		Condition: cond,
		Trials:    derived,
	}
}

// skipReason maps a fit failure to its reported reason.
func skipReason(err error) model.SkipReason {
	switch {
	case errors.Is(err, regression.ErrInsufficientTrials):
		return model.SkipInsufficientTrials
	case errors.Is(err, regression.ErrInvalidMass):
		return model.SkipInvalidMass
	default:
		return model.SkipDegenerateFit
	}
}

func meanBodyMass(trials []model.DerivedTrial) float64 {
	if len(trials) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, t := range trials {
		sum += t.BodyMassKG
	}
	return sum / float64(len(trials))
}
