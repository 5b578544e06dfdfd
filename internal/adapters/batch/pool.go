// Package batch runs the per-athlete pipeline over a closed set of trial
// groups with a bounded worker pool. Athletes are mutually independent, so
// the map is embarrassingly parallel; ordering is restored by the results
// store, not by the workers.
package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/okian/fvprofile/internal/adapters/results"
	"github.com/okian/fvprofile/internal/domain/model"
	"github.com/okian/fvprofile/internal/domain/trial"
	"github.com/okian/fvprofile/pkg/logger"
)

// ProcessFunc runs the full per-athlete pipeline for one trial group.
type ProcessFunc func(ctx context.Context, set trial.Set) model.Outcome

// Pool fans trial groups out to a fixed number of workers and records every
// outcome with its group's first-seen index.
type Pool struct {
	workers int
	process ProcessFunc
	store   results.Store
	logger  logger.Logger
}

// NewPool creates a worker pool. Worker counts below 1 default to the number
// of CPUs; 1 yields a fully synchronous run.
func NewPool(workers int, process ProcessFunc, store results.Store, opts ...Option) *Pool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	p := &Pool{
		workers: workers,
		process: process,
		store:   store,
		logger:  logger.Get().Named("batch"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// job pairs a trial group with its first-seen position.
type job struct {
	index int
	set   trial.Set
}

// Run processes every group and returns once all outcomes are recorded or
// the context is cancelled. Unprocessed groups are simply absent from the
// store after cancellation.
func (p *Pool) Run(ctx context.Context, sets []trial.Set) {
	jobs := make(chan job)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.runWorker(ctx, jobs)
		}()
	}

	for i, set := range sets {
		select {
		case jobs <- job{index: i, set: set}:
		case <-ctx.Done():
			p.logger.Warn(ctx, "batch cancelled before all athletes were dispatched",
				logger.Int("dispatched", i),
				logger.Int("total", len(sets)),
			)
			close(jobs)
			wg.Wait()
			return
		}
	}
	close(jobs)
	wg.Wait()
}

// runWorker drains the job channel until it closes or the context ends.
func (p *Pool) runWorker(ctx context.Context, jobs <-chan job) {
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-jobs:
			if !ok {
				return
			}
			p.store.Record(ctx, j.index, p.process(ctx, j.set))
		}
	}
}
