package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/fvprofile/internal/adapters/export"
	"github.com/okian/fvprofile/internal/adapters/results"
	"github.com/okian/fvprofile/internal/adapters/source"
	"github.com/okian/fvprofile/internal/app"
	"github.com/okian/fvprofile/internal/config"
	"github.com/okian/fvprofile/internal/domain/model"
	"github.com/okian/fvprofile/pkg/logger"
	"github.com/okian/fvprofile/pkg/metrics"
)

// Metrics server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	var (
		inputPath  = flag.String("input", "", "Path to the trial CSV file (required)")
		outputPath = flag.String("out", "profiles.csv", "Path to write athlete profiles to")
		format     = flag.String("format", "", "Output format: csv or parquet (default: from config)")
		workers    = flag.Int("workers", 0, "Concurrent athlete pipelines (default: from config)")
	)
	flag.Parse()

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if *inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *format == "" {
		*format = cfg.ExportFormat
	}
	if *workers <= 0 {
		*workers = cfg.Workers
	}
	if *format != "csv" && *format != "parquet" {
		os.Stderr.WriteString("unknown output format: " + *format + "\n")
		os.Exit(2)
	}

	// Optional Prometheus listener.
	if cfg.MetricsAddr != "" {
		srv := metricsServer(cfg.MetricsAddr)
		go func() {
			log.Info(ctx, "starting metrics server", logger.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error(ctx, "metrics server failed", logger.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	src := source.NewCSVSource(source.WithColumns(source.Columns{
		Athlete:  cfg.Columns.Athlete,
		BodyMass: cfg.Columns.BodyMass,
		Load:     cfg.Columns.Load,
		Height:   cfg.Columns.Height,
		Depth:    cfg.Columns.Depth,
	}))
	rows, err := src.ReadFile(ctx, *inputPath)
	if err != nil {
		log.Error(ctx, "failed to read trials", logger.String("input", *inputPath), logger.Error(err))
		os.Exit(1)
	}

	svc := app.NewService(
		app.WithLogger(log),
		app.WithWorkers(*workers),
		app.WithOrder(results.Order(cfg.Order)),
		app.WithNegativeLoadAllowed(cfg.AllowNegativeLoad),
	)
	outcomes, err := svc.Analyze(ctx, rows)
	if err != nil {
		log.Error(ctx, "analysis failed", logger.Error(err))
		os.Exit(1)
	}

	profiles := make([]model.AthleteProfile, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Skipped() {
			log.Warn(ctx, "athlete skipped",
				logger.String("athlete_id", o.AthleteID),
				logger.String("reason", string(o.Skip)),
			)
			continue
		}
		if o.Condition != "" {
			log.Warn(ctx, "profile emitted with condition",
				logger.String("athlete_id", o.AthleteID),
				logger.String("condition", string(o.Condition)),
			)
		}
		profiles = append(profiles, *o.Profile)
	}

	switch *format {
	case "parquet":
		err = export.WriteProfilesParquetFile(*outputPath, profiles)
	default:
		err = export.WriteProfilesCSVFile(*outputPath, profiles)
	}
	if err != nil {
		log.Error(ctx, "failed to write profiles", logger.String("out", *outputPath), logger.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "profiles written",
		logger.String("out", *outputPath),
		logger.String("format", *format),
		logger.Int("profiles", len(profiles)),
		logger.Int("skipped", len(outcomes)-len(profiles)),
	)
}

func metricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
