// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Columns names the CSV header fields carrying each trial measurement.
type Columns struct {
	// Athlete is the athlete identifier column.
	Athlete string `koanf:"athlete"`

	// BodyMass is the body mass column (kg).
	BodyMass string `koanf:"body_mass"`

	// Load is the additional load column (kg, 0 = unloaded).
	Load string `koanf:"load"`

	// Height is the jump height column (cm).
	Height string `koanf:"height"`

	// Depth is the countermovement depth column (cm, sign ignored).
	Depth string `koanf:"depth"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Workers sets the number of concurrent athlete pipelines.
	// 1 makes the run fully synchronous.
	Workers int `koanf:"workers"`

	// Order selects output ordering: "input" (first-seen) or "id" (lexical).
	Order string `koanf:"order"`

	// AllowNegativeLoad accepts rows encoding assisted jumps as negative load.
	AllowNegativeLoad bool `koanf:"allow_negative_load"`

	// MetricsAddr configures an optional Prometheus listen address,
	// e.g. ":9091". Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// ExportFormat selects the profile export encoding: "csv" or "parquet".
	ExportFormat string `koanf:"export_format"`

	// Columns maps input CSV headers to trial fields.
	Columns Columns `koanf:"columns"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Workers:           runtime.NumCPU(),
		Order:             "input",
		AllowNegativeLoad: false,
		MetricsAddr:       "",
		ExportFormat:      "csv",
		Columns: Columns{
			Athlete:  "athlete",
			BodyMass: "body_mass_kg",
			Load:     "load_kg",
			Height:   "jump_height_cm",
			Depth:    "depth_cm",
		},
	}
}
