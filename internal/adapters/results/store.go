// Package results collects per-athlete outcomes and serves them back in a
// stable, deterministic order regardless of how many workers produced them.
package results

import (
	"context"
	"sort"
	"sync"

	"github.com/okian/fvprofile/internal/domain/model"
)

// Order selects the snapshot ordering.
type Order string

const (
	// OrderInput orders outcomes by the first-seen position of the athlete
	// in the source data.
	OrderInput Order = "input"

	// OrderID orders outcomes lexically by athlete id.
	OrderID Order = "id"
)

// Store provides write access for workers and an ordered read for callers.
type Store interface {
	// Record stores the outcome produced for the athlete group at the given
	// first-seen index. Safe for concurrent use.
	Record(ctx context.Context, index int, o model.Outcome)

	// Snapshot returns all recorded outcomes in the configured order.
	Snapshot(ctx context.Context) []model.Outcome

	// Count returns the number of recorded outcomes.
	Count(ctx context.Context) int
}

// MemoryStore implements Store in memory.
type MemoryStore struct {
	mu       sync.Mutex
	outcomes map[int]model.Outcome
	order    Order
}

// NewMemoryStore creates an in-memory outcome store with configuration options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		outcomes: make(map[int]model.Outcome),
		order:    OrderInput,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record stores one outcome under its group index. A later Record for the
// same index overwrites; group indexes are unique per run so this does not
// happen in practice.
func (s *MemoryStore) Record(_ context.Context, index int, o model.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes[index] = o
}

// Snapshot returns the outcomes in the configured deterministic order.
func (s *MemoryStore) Snapshot(_ context.Context) []model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	indexes := make([]int, 0, len(s.outcomes))
	for i := range s.outcomes {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	out := make([]model.Outcome, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, s.outcomes[i])
	}

	if s.order == OrderID {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AthleteID < out[j].AthleteID
		})
	}
	return out
}

// Count returns the number of recorded outcomes.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.outcomes)
}
