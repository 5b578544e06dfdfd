package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FVP_CONFIG is set
//  3. env (prefix FVP_)
func Load(ctx context.Context) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("FVP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: FVP_WORKERS, FVP_LOG_LEVEL, ...
	// Nested keys use double underscores: FVP_COLUMNS__ATHLETE -> columns.athlete.
	envProvider := env.Provider("FVP_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "fvp_")
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the pipeline cannot run with.
func validate(cfg *Config) error {
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1", ErrInvalidConfig)
	}
	if cfg.Order != "input" && cfg.Order != "id" {
		return fmt.Errorf("%w: order must be input or id, got %q", ErrInvalidConfig, cfg.Order)
	}
	if cfg.ExportFormat != "csv" && cfg.ExportFormat != "parquet" {
		return fmt.Errorf("%w: export_format must be csv or parquet, got %q", ErrInvalidConfig, cfg.ExportFormat)
	}
	for name, col := range map[string]string{
		"columns.athlete":   cfg.Columns.Athlete,
		"columns.body_mass": cfg.Columns.BodyMass,
		"columns.load":      cfg.Columns.Load,
		"columns.height":    cfg.Columns.Height,
		"columns.depth":     cfg.Columns.Depth,
	} {
		if col == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, name)
		}
	}
	return nil
}
