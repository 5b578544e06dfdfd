package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/okian/fvprofile/internal/adapters/export"
	"github.com/okian/fvprofile/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleProfiles() []model.AthleteProfile {
	return []model.AthleteProfile{
		{
			AthleteID:        "ada",
			BodyMassKG:       72.5,
			DepthMedM:        0.31,
			ForceAtZeroN:     2100,
			VelocityAtZeroMS: 3.4,
			MaxPowerW:        1785,
			SlopeActual:      -617.6,
			SlopePerKG:       -8.52,
			SlopeOptPerKG:    -12.3,
			FVIPercent:       69.3,
			RSquared:         0.97,
			Recommendation:   model.RecommendLowForceDeficit,
		},
		{
			AthleteID:        "mia",
			BodyMassKG:       65,
			DepthMedM:        0.29,
			ForceAtZeroN:     1800,
			VelocityAtZeroMS: 3.1,
			MaxPowerW:        1395,
			SlopeActual:      -580.6,
			SlopePerKG:       -8.93,
			SlopeOptPerKG:    -8.5,
			FVIPercent:       105.1,
			RSquared:         0.99,
			Recommendation:   model.RecommendWellBalanced,
		},
	}
}

func TestWriteProfilesCSV(t *testing.T) {
	Convey("Given a set of profiles", t, func() {
		profiles := sampleProfiles()

		Convey("When writing CSV", func() {
			var buf bytes.Buffer
			err := export.WriteProfilesCSV(&buf, profiles)

			Convey("Then header and one line per profile come out", func() {
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
				So(lines, ShouldHaveLength, 3)
				So(lines[0], ShouldStartWith, "athlete_id,body_mass_kg,depth_med_m")
				So(lines[1], ShouldStartWith, "ada,72.5,0.31,2100,3.4,1785")
				So(lines[1], ShouldEndWith, "Low Force Deficit")
				So(lines[2], ShouldStartWith, "mia,")
				So(lines[2], ShouldEndWith, "Well Balanced")
			})
		})

		Convey("When writing an empty profile set", func() {
			var buf bytes.Buffer
			err := export.WriteProfilesCSV(&buf, nil)

			Convey("Then only the header is written", func() {
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
				So(lines, ShouldHaveLength, 1)
			})
		})
	})
}

func TestMarshalProfilesParquet(t *testing.T) {
	Convey("Given a set of profiles", t, func() {
		profiles := sampleProfiles()

		Convey("When marshaling to parquet", func() {
			data, err := export.MarshalProfilesParquet(profiles)

			Convey("Then a valid parquet blob comes out", func() {
				So(err, ShouldBeNil)
				So(len(data), ShouldBeGreaterThan, 8)
				So(string(data[:4]), ShouldEqual, "PAR1")
				So(string(data[len(data)-4:]), ShouldEqual, "PAR1")
			})
		})

		Convey("When marshaling an empty profile set", func() {
			data, err := export.MarshalProfilesParquet(nil)

			Convey("Then an empty but valid file comes out", func() {
				So(err, ShouldBeNil)
				So(string(data[:4]), ShouldEqual, "PAR1")
			})
		})
	})
}
