// Package export renders athlete profiles to tabular output formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/okian/fvprofile/internal/domain/model"
)

// profileHeader is the column order shared by both output formats.
var profileHeader = []string{
	"athlete_id", "body_mass_kg", "depth_med_m",
	"force_at_zero_n", "velocity_at_zero_ms", "max_power_w",
	"slope_actual", "slope_per_kg", "slope_opt_per_kg",
	"fvi_percent", "r_squared", "recommendation",
}

// WriteProfilesCSV writes one row per profile to w, header first.
func WriteProfilesCSV(w io.Writer, profiles []model.AthleteProfile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(profileHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range profiles {
		row := []string{
			p.AthleteID,
			formatFloat(p.BodyMassKG),
			formatFloat(p.DepthMedM),
			formatFloat(p.ForceAtZeroN),
			formatFloat(p.VelocityAtZeroMS),
			formatFloat(p.MaxPowerW),
			formatFloat(p.SlopeActual),
			formatFloat(p.SlopePerKG),
			formatFloat(p.SlopeOptPerKG),
			formatFloat(p.FVIPercent),
			formatFloat(p.RSquared),
			string(p.Recommendation),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write profile row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteProfilesCSVFile writes profiles as CSV to a file on disk.
func WriteProfilesCSVFile(path string, profiles []model.AthleteProfile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return WriteProfilesCSV(f, profiles)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
