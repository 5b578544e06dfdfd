package export

import (
	"fmt"
	"os"

	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/okian/fvprofile/internal/domain/model"
)

type profileParquetRow struct {
	AthleteID        string  `parquet:"name=athlete_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	BodyMassKG       float64 `parquet:"name=body_mass_kg, type=DOUBLE"`
	DepthMedM        float64 `parquet:"name=depth_med_m, type=DOUBLE"`
	ForceAtZeroN     float64 `parquet:"name=force_at_zero_n, type=DOUBLE"`
	VelocityAtZeroMS float64 `parquet:"name=velocity_at_zero_ms, type=DOUBLE"`
	MaxPowerW        float64 `parquet:"name=max_power_w, type=DOUBLE"`
	SlopeActual      float64 `parquet:"name=slope_actual, type=DOUBLE"`
	SlopePerKG       float64 `parquet:"name=slope_per_kg, type=DOUBLE"`
	SlopeOptPerKG    float64 `parquet:"name=slope_opt_per_kg, type=DOUBLE"`
	FVIPercent       float64 `parquet:"name=fvi_percent, type=DOUBLE"`
	RSquared         float64 `parquet:"name=r_squared, type=DOUBLE"`
	Recommendation   string  `parquet:"name=recommendation, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
}

// MarshalProfilesParquet renders profiles as a snappy-compressed parquet
// blob in memory.
func MarshalProfilesParquet(profiles []model.AthleteProfile) ([]byte, error) {
	fw := parquetbuffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(profileParquetRow), 4)
	if err != nil {
		return nil, fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, p := range profiles {
		row := profileParquetRow{
			AthleteID:        p.AthleteID,
			BodyMassKG:       p.BodyMassKG,
			DepthMedM:        p.DepthMedM,
			ForceAtZeroN:     p.ForceAtZeroN,
			VelocityAtZeroMS: p.VelocityAtZeroMS,
			MaxPowerW:        p.MaxPowerW,
			SlopeActual:      p.SlopeActual,
			SlopePerKG:       p.SlopePerKG,
			SlopeOptPerKG:    p.SlopeOptPerKG,
			FVIPercent:       p.FVIPercent,
			RSquared:         p.RSquared,
			Recommendation:   string(p.Recommendation),
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			return nil, fmt.Errorf("write parquet row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("finish parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("close parquet buffer: %w", err)
	}
	return append([]byte(nil), fw.Bytes()...), nil
}

// WriteProfilesParquetFile writes profiles as parquet to a file on disk.
func WriteProfilesParquetFile(path string, profiles []model.AthleteProfile) error {
	data, err := MarshalProfilesParquet(profiles)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
