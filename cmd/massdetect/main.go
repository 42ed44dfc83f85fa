// Command massdetect detects mass peaks in spectra.
//
// Usage:
//
//	massdetect -i run.mzML
//	massdetect -i run.mzML -resolution 100000 -model lorentzian -workers 4
//	massdetect -i scan.txt -noise 100 -smooth 0.3 -chart peaks.html
//
// Input is either an mzML file or a two-column text file holding one
// (m/z, intensity) pair per line. Without -noise the detection threshold is
// estimated per scan from the intensity distribution.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/cwbudde/algo-masspec/denoise"
	"github.com/cwbudde/algo-masspec/detect"
	"github.com/cwbudde/algo-masspec/ms"
	"github.com/cwbudde/algo-masspec/peakmodel"
	scanstats "github.com/cwbudde/algo-masspec/stats/scan"
)

func main() {
	var (
		input      string
		noise      float64
		resolution int
		model      string
		smooth     float64
		msLevel    int
		workers    int
		chartPath  string
		chartScan  int
		verbose    bool
	)

	app := &cli.App{
		Name:  "massdetect",
		Usage: "Detect mass peaks in mzML or two-column text spectra",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Input file (.mzML or two-column text)",
				Destination: &input,
				Required:    true,
			},
			&cli.Float64Flag{
				Name:        "noise",
				Usage:       "Noise level; negative means estimate per scan",
				Value:       -1,
				Destination: &noise,
			},
			&cli.IntFlag{
				Name:        "resolution",
				Usage:       "Instrument resolution (m/Δm)",
				Value:       60000,
				Destination: &resolution,
			},
			&cli.StringFlag{
				Name:        "model",
				Usage:       "Peak shape model (" + strings.Join(peakmodel.Names(), ", ") + "); empty disables shoulder removal",
				Value:       "gaussian",
				Destination: &model,
			},
			&cli.Float64Flag{
				Name:        "smooth",
				Usage:       "Low-pass smoothing cutoff in (0,1]; 0 disables",
				Destination: &smooth,
			},
			&cli.IntFlag{
				Name:        "ms-level",
				Usage:       "Only process spectra of this MS level; 0 processes all",
				Destination: &msLevel,
			},
			&cli.IntFlag{
				Name:        "workers",
				Usage:       "Concurrent scans (fixed noise level only)",
				Value:       1,
				Destination: &workers,
			},
			&cli.StringFlag{
				Name:        "chart",
				Usage:       "Write an HTML chart of one scan to this file",
				Destination: &chartPath,
			},
			&cli.IntFlag{
				Name:        "chart-scan",
				Usage:       "Scan index to chart",
				Destination: &chartScan,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Print every detected peak",
				Destination: &verbose,
			},
		},
		Action: func(c *cli.Context) error {
			scans, labels, err := loadScans(input, msLevel)
			if err != nil {
				return err
			}
			if len(scans) == 0 {
				return fmt.Errorf("no scans in %s", input)
			}

			if smooth > 0 {
				for i := range scans {
					smoothed, err := denoise.Smooth(scans[i], smooth)
					if err != nil {
						return fmt.Errorf("smoothing scan %d: %w", i, err)
					}
					scans[i] = smoothed
				}
			}

			results, err := detectScans(scans, noise, resolution, model, workers)
			if err != nil {
				return err
			}

			printResults(scans, labels, results, verbose)

			if chartPath != "" {
				if chartScan < 0 || chartScan >= len(scans) {
					return fmt.Errorf("chart-scan %d out of range [0, %d)", chartScan, len(scans))
				}
				if err := renderChart(chartPath, labels[chartScan], scans[chartScan], results[chartScan]); err != nil {
					return err
				}
				log.WithField("file", chartPath).Info("chart written")
			}

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// detectScans runs detection over all scans. A fixed noise level shares one
// detector and can fan out over workers; per-scan estimation configures a
// detector per scan.
func detectScans(scans []ms.Scan, noise float64, resolution int, model string, workers int) ([][]detect.Peak, error) {
	if noise >= 0 {
		det, err := detect.New(detect.Config{
			NoiseLevel: noise,
			Resolution: resolution,
			PeakModel:  model,
			Logger:     log.StandardLogger(),
		})
		if err != nil {
			return nil, err
		}

		return det.DetectAllParallel(context.Background(), scans, workers)
	}

	results := make([][]detect.Peak, len(scans))
	for i, scan := range scans {
		level := scanstats.Calculate(scan).NoiseEstimate

		det, err := detect.New(detect.Config{
			NoiseLevel: level,
			Resolution: resolution,
			PeakModel:  model,
			Logger:     log.StandardLogger(),
		})
		if err != nil {
			return nil, err
		}

		log.WithFields(log.Fields{"scan": i, "noise": level}).Debug("estimated noise level")
		results[i] = det.DetectScan(scan)
	}

	return results, nil
}

func printResults(scans []ms.Scan, labels []string, results [][]detect.Peak, verbose bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCAN\tID\tSAMPLES\tPEAKS\tBASE m/z\tBASE INTENSITY")

	for i, peaks := range results {
		var baseMz, baseInt float64
		for _, p := range peaks {
			if p.Intensity > baseInt {
				baseInt = p.Intensity
				baseMz = p.Mz
			}
		}

		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.4f\t%.1f\n",
			i, labels[i], len(scans[i]), len(peaks), baseMz, baseInt)
	}
	w.Flush()

	if !verbose {
		return
	}

	for i, peaks := range results {
		fmt.Printf("\nscan %d (%s):\n", i, labels[i])
		for _, p := range peaks {
			fmt.Printf("  m/z %.4f  intensity %.1f\n", p.Mz, p.Intensity)
		}
	}
}
