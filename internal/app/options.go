package app

import (
	"github.com/okian/fvprofile/internal/adapters/results"
	"github.com/okian/fvprofile/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkers sets how many athlete groups are profiled concurrently.
// Values below one keep the default of one worker per CPU.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithOrder sets how outcomes are ordered in the returned slice.
func WithOrder(order results.Order) Option {
	return func(s *Service) {
		s.order = order
	}
}

// WithNegativeLoadAllowed accepts trials whose additional load is negative,
// as produced by assisted-jump setups.
func WithNegativeLoadAllowed(allow bool) Option {
	return func(s *Service) {
		s.allowNegativeLoad = allow
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
