package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cwbudde/algo-masspec/detect"
	"github.com/cwbudde/algo-masspec/ms"
)

// renderChart writes an HTML line chart of the scan profile with the
// detected peaks as a second series.
func renderChart(path, title string, scan ms.Scan, peaks []detect.Peak) error {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "massdetect",
		Subtitle: fmt.Sprintf("%s: %d peaks", title, len(peaks)),
	}))

	xAxis := make([]string, len(scan))
	profile := make([]opts.LineData, len(scan))
	for i, s := range scan {
		xAxis[i] = fmt.Sprintf("%.4f", s.Mz)
		profile[i] = opts.LineData{Value: s.Intensity}
	}

	// Peak markers ride on the same category axis: the peak intensity is
	// placed at the nearest profile sample, zero everywhere else.
	markers := make([]opts.LineData, len(scan))
	for i := range markers {
		markers[i] = opts.LineData{Value: 0.0}
	}
	for _, p := range peaks {
		idx := nearestSample(scan, p.Mz)
		if idx >= 0 {
			markers[idx] = opts.LineData{Value: p.Intensity}
		}
	}

	line.SetXAxis(xAxis).
		AddSeries("profile", profile).
		AddSeries("peaks", markers)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}

// nearestSample returns the index of the scan sample closest in m/z, or -1
// for an empty scan.
func nearestSample(scan ms.Scan, mz float64) int {
	best := -1
	bestDist := 0.0

	for i, s := range scan {
		d := s.Mz - mz
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}
