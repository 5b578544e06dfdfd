// Command gen-trials produces a synthetic loaded-jump dataset for exercising
// the profiling pipeline without force-plate exports at hand.
package main

import (
	"encoding/csv"
	"flag"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Default generation constants.
const (
	defaultAthletes  = 20
	defaultTrials    = 5
	loadStepKG       = 10.0
	baseHeightCM     = 42.0
	heightDropPerKG  = 0.35 // cm of jump height lost per kg of load
	heightJitterCM   = 1.5
	baseDepthCM      = 31.0
	depthJitterCM    = 3.0
	bodyMassMinKG    = 55.0
	bodyMassSpreadKG = 40.0
)

func main() {
	var (
		athletes = flag.Int("athletes", defaultAthletes, "Number of athletes to generate")
		trials   = flag.Int("trials", defaultTrials, "Loaded trials per athlete")
		outFile  = flag.String("out", "trials.csv", "Output CSV file")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*outFile)
	if err != nil {
		os.Stderr.WriteString("failed to create output file: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"athlete", "body_mass_kg", "load_kg", "jump_height_cm", "depth_cm"}); err != nil {
		os.Stderr.WriteString("failed to write header: " + err.Error() + "\n")
		os.Exit(1)
	}

	for i := 0; i < *athletes; i++ {
		id := uuid.NewString()
		mass := bodyMassMinKG + rng.Float64()*bodyMassSpreadKG
		ability := 0.8 + rng.Float64()*0.4 // scales the whole height curve

		for t := 0; t < *trials; t++ {
			load := float64(t) * loadStepKG
			height := ability*baseHeightCM - load*heightDropPerKG + rng.NormFloat64()*heightJitterCM
			if height < 5 {
				height = 5
			}
			depth := baseDepthCM + rng.NormFloat64()*depthJitterCM

			row := []string{
				id,
				strconv.FormatFloat(mass, 'f', 1, 64),
				strconv.FormatFloat(load, 'f', 1, 64),
				strconv.FormatFloat(height, 'f', 1, 64),
				strconv.FormatFloat(depth, 'f', 1, 64),
			}
			if err := w.Write(row); err != nil {
				os.Stderr.WriteString("failed to write row: " + err.Error() + "\n")
				os.Exit(1)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		os.Stderr.WriteString("failed to flush output: " + err.Error() + "\n")
		os.Exit(1)
	}
}
