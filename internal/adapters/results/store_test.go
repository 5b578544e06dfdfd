package results_test

import (
	"context"
	"sync"
	"testing"

	results "github.com/okian/fvprofile/internal/adapters/results"
	model "github.com/okian/fvprofile/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore(t *testing.T) {
	Convey("Given an input-ordered store", t, func() {
		store := results.NewMemoryStore()
		ctx := context.Background()

		Convey("When outcomes arrive out of order", func() {
			store.Record(ctx, 2, model.Outcome{AthleteID: "c"})
			store.Record(ctx, 0, model.Outcome{AthleteID: "b"})
			store.Record(ctx, 1, model.Outcome{AthleteID: "a"})

			Convey("Then the snapshot follows first-seen index order", func() {
				out := store.Snapshot(ctx)
				So(out, ShouldHaveLength, 3)
				So(out[0].AthleteID, ShouldEqual, "b")
				So(out[1].AthleteID, ShouldEqual, "a")
				So(out[2].AthleteID, ShouldEqual, "c")
				So(store.Count(ctx), ShouldEqual, 3)
			})
		})

		Convey("When outcomes arrive concurrently", func() {
			ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
			var wg sync.WaitGroup
			for i, id := range ids {
				wg.Add(1)
				go func(i int, id string) {
					defer wg.Done()
					store.Record(ctx, i, model.Outcome{AthleteID: id})
				}(i, id)
			}
			wg.Wait()

			Convey("Then every outcome is recorded in order", func() {
				out := store.Snapshot(ctx)
				So(out, ShouldHaveLength, len(ids))
				for i, id := range ids {
					So(out[i].AthleteID, ShouldEqual, id)
				}
			})
		})
	})

	Convey("Given an id-ordered store", t, func() {
		store := results.NewMemoryStore(results.WithOrder(results.OrderID))
		ctx := context.Background()

		Convey("When outcomes are recorded in input order", func() {
			store.Record(ctx, 0, model.Outcome{AthleteID: "zoe"})
			store.Record(ctx, 1, model.Outcome{AthleteID: "ada"})
			store.Record(ctx, 2, model.Outcome{AthleteID: "mia"})

			Convey("Then the snapshot sorts lexically by athlete id", func() {
				out := store.Snapshot(ctx)
				So(out[0].AthleteID, ShouldEqual, "ada")
				So(out[1].AthleteID, ShouldEqual, "mia")
				So(out[2].AthleteID, ShouldEqual, "zoe")
			})
		})
	})

	Convey("Given an unknown order option", t, func() {
		store := results.NewMemoryStore(results.WithOrder(results.Order("random")))
		ctx := context.Background()
		store.Record(ctx, 1, model.Outcome{AthleteID: "b"})
		store.Record(ctx, 0, model.Outcome{AthleteID: "a"})

		Convey("Then it falls back to input order", func() {
			out := store.Snapshot(ctx)
			So(out[0].AthleteID, ShouldEqual, "a")
			So(out[1].AthleteID, ShouldEqual, "b")
		})
	})
}
