package batch_test

import (
	"context"
	"testing"

	batch "github.com/okian/fvprofile/internal/adapters/batch"
	results "github.com/okian/fvprofile/internal/adapters/results"
	model "github.com/okian/fvprofile/internal/domain/model"
	trial "github.com/okian/fvprofile/internal/domain/trial"
	"github.com/okian/fvprofile/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func makeSets(ids ...string) []trial.Set {
	sets := make([]trial.Set, len(ids))
	for i, id := range ids {
		sets[i] = trial.Set{AthleteID: id}
	}
	return sets
}

func echoProcess(_ context.Context, set trial.Set) model.Outcome {
	return model.Outcome{AthleteID: set.AthleteID, Skip: model.SkipInsufficientTrials}
}

func TestPoolRun(t *testing.T) {
	Convey("Given a pool with several workers", t, func() {
		store := results.NewMemoryStore()
		pool := batch.NewPool(4, echoProcess, store)
		ctx := context.Background()

		Convey("When running over many groups", func() {
			sets := makeSets("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
			pool.Run(ctx, sets)

			Convey("Then every group is processed exactly once in order", func() {
				out := store.Snapshot(ctx)
				So(out, ShouldHaveLength, len(sets))
				for i, set := range sets {
					So(out[i].AthleteID, ShouldEqual, set.AthleteID)
				}
			})
		})

		Convey("When running over an empty group list", func() {
			pool.Run(ctx, nil)

			Convey("Then nothing is recorded", func() {
				So(store.Count(ctx), ShouldEqual, 0)
			})
		})
	})

	Convey("Given a single-worker pool", t, func() {
		store := results.NewMemoryStore()
		pool := batch.NewPool(1, echoProcess, store)
		ctx := context.Background()

		Convey("When running synchronously", func() {
			sets := makeSets("x", "y", "z")
			pool.Run(ctx, sets)

			Convey("Then the result matches the parallel run", func() {
				out := store.Snapshot(ctx)
				So(out, ShouldHaveLength, 3)
				So(out[0].AthleteID, ShouldEqual, "x")
				So(out[2].AthleteID, ShouldEqual, "z")
			})
		})
	})

	Convey("Given a cancelled context", t, func() {
		store := results.NewMemoryStore()
		pool := batch.NewPool(2, echoProcess, store)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("When running", func() {
			pool.Run(ctx, makeSets("a", "b", "c"))

			Convey("Then the pool returns without hanging", func() {
				So(store.Count(ctx), ShouldBeLessThanOrEqualTo, 3)
			})
		})
	})

	Convey("Given a non-positive worker count", t, func() {
		store := results.NewMemoryStore()
		pool := batch.NewPool(0, echoProcess, store)

		Convey("When running", func() {
			pool.Run(context.Background(), makeSets("a", "b"))

			Convey("Then it still processes every group", func() {
				So(store.Count(context.Background()), ShouldEqual, 2)
			})
		})
	})
}
