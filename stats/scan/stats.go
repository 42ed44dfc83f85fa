// Package scan provides summary statistics for single spectra, including a
// noise-level estimate suitable as a detection threshold.
package scan

import (
	"github.com/cwbudde/algo-masspec/internal/floats"
	"github.com/cwbudde/algo-masspec/ms"
)

// Stats holds summary statistics of one scan.
type Stats struct {
	Samples int
	NonZero int

	MzMin float64
	MzMax float64

	// BasePeakMz and BasePeakIntensity describe the most intense sample.
	BasePeakMz        float64
	BasePeakIntensity float64

	// TIC is the total ion current, the sum of all intensities.
	TIC float64

	MeanIntensity   float64 // mean over non-zero samples
	MedianIntensity float64 // median over non-zero samples

	// NoiseEstimate is a robust intensity floor: the median non-zero
	// intensity plus three median absolute deviations. Feeding it into
	// detection keeps samples within ordinary baseline scatter below the
	// threshold.
	NoiseEstimate float64
}

// Calculate computes all statistics for one scan. An empty scan yields a
// zero-valued Stats.
func Calculate(s ms.Scan) Stats {
	if len(s) == 0 {
		return Stats{}
	}

	st := Stats{
		Samples: len(s),
		MzMin:   s[0].Mz,
		MzMax:   s[len(s)-1].Mz,
	}

	nonZero := make([]float64, 0, len(s))
	for _, smp := range s {
		st.TIC += smp.Intensity

		if smp.Intensity > st.BasePeakIntensity {
			st.BasePeakIntensity = smp.Intensity
			st.BasePeakMz = smp.Mz
		}

		if smp.Intensity > 0 {
			nonZero = append(nonZero, smp.Intensity)
		}
	}

	st.NonZero = len(nonZero)
	if st.NonZero == 0 {
		return st
	}

	st.MeanIntensity = st.TIC / float64(st.NonZero)
	st.MedianIntensity = floats.Median(nonZero)
	st.NoiseEstimate = st.MedianIntensity + 3*floats.MAD(nonZero)

	return st
}
