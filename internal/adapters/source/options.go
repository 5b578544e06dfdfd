package source

import (
	"github.com/okian/fvprofile/pkg/logger"
)

// Option applies a configuration option to the CSVSource.
type Option func(*CSVSource)

// WithColumns sets the header names to read each measurement from. Empty
// names keep their defaults.
func WithColumns(cols Columns) Option {
	return func(s *CSVSource) {
		if cols.Athlete != "" {
			s.columns.Athlete = cols.Athlete
		}
		if cols.BodyMass != "" {
			s.columns.BodyMass = cols.BodyMass
		}
		if cols.Load != "" {
			s.columns.Load = cols.Load
		}
		if cols.Height != "" {
			s.columns.Height = cols.Height
		}
		if cols.Depth != "" {
			s.columns.Depth = cols.Depth
		}
	}
}

// WithLogger sets a custom logger for the source.
func WithLogger(l logger.Logger) Option {
	return func(s *CSVSource) {
		if l != nil {
			s.logger = l
		}
	}
}
