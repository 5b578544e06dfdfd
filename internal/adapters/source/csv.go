// Package source loads raw trial rows from tabular input. The core pipeline
// is loader-agnostic; this adapter covers the common case of a CSV file with
// a header row and configurable column names.
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/okian/fvprofile/internal/domain/model"
	"github.com/okian/fvprofile/pkg/logger"
)

// Columns names the header fields carrying each trial measurement.
type Columns struct {
	Athlete  string
	BodyMass string
	Load     string
	Height   string
	Depth    string
}

// DefaultColumns returns the header names used when none are configured.
func DefaultColumns() Columns {
	return Columns{
		Athlete:  "athlete",
		BodyMass: "body_mass_kg",
		Load:     "load_kg",
		Height:   "jump_height_cm",
		Depth:    "depth_cm",
	}
}

// CSVSource reads raw trial rows from CSV input.
type CSVSource struct {
	columns Columns
	logger  logger.Logger
}

// NewCSVSource creates a CSV source with configuration options.
func NewCSVSource(opts ...Option) *CSVSource {
	s := &CSVSource{
		columns: DefaultColumns(),
		logger:  logger.Get().Named("source"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadFile reads raw rows from a CSV file on disk.
func (s *CSVSource) ReadFile(ctx context.Context, path string) ([]model.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trial file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return s.Read(ctx, f)
}

// Read reads raw rows from CSV input. The first record must be a header
// containing every configured column (matched case-insensitively, trimmed);
// extra columns are ignored. Numeric cells that fail to parse are mapped to
// NaN so validation drops the row rather than the whole run aborting.
func (s *CSVSource) Read(ctx context.Context, r io.Reader) ([]model.RawRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := s.columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var rows []model.RawRow
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		rows = append(rows, model.RawRow{
			AthleteID:    strings.TrimSpace(record[idx.athlete]),
			BodyMassKG:   parseCell(record[idx.bodyMass]),
			LoadKG:       parseCell(record[idx.load]),
			JumpHeightCM: parseCell(record[idx.height]),
			DepthCM:      parseCell(record[idx.depth]),
		})
	}

	s.logger.Debug(ctx, "read trial rows", logger.Int("rows", len(rows)))
	return rows, nil
}

type indexes struct {
	athlete  int
	bodyMass int
	load     int
	height   int
	depth    int
}

// columnIndexes resolves each configured column name to its header position.
func (s *CSVSource) columnIndexes(header []string) (indexes, error) {
	position := make(map[string]int, len(header))
	for i, name := range header {
		position[strings.ToLower(strings.TrimSpace(name))] = i
	}

	idx := indexes{}
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{s.columns.Athlete, &idx.athlete},
		{s.columns.BodyMass, &idx.bodyMass},
		{s.columns.Load, &idx.load},
		{s.columns.Height, &idx.height},
		{s.columns.Depth, &idx.depth},
	} {
		i, ok := position[strings.ToLower(col.name)]
		if !ok {
			return indexes{}, fmt.Errorf("%w: %s", ErrMissingColumn, col.name)
		}
		*col.dst = i
	}
	return idx, nil
}

// parseCell converts one numeric cell, mapping failures to NaN so downstream
// validation drops the row.
func parseCell(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
