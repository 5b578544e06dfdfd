package results

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithOrder sets the snapshot ordering. Unknown values keep the default
// first-seen input order.
func WithOrder(order Order) Option {
	return func(s *MemoryStore) {
		if order == OrderInput || order == OrderID {
			s.order = order
		}
	}
}
