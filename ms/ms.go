package ms

import "errors"

var (
	// ErrUnsortedScan is returned when scan samples are not in ascending m/z order.
	ErrUnsortedScan = errors.New("ms: scan samples must be ascending by m/z")
	// ErrNegativeIntensity is returned when a sample carries an intensity below zero.
	ErrNegativeIntensity = errors.New("ms: sample intensity must be >= 0")
)

// Sample is one acquired data point of a spectrum.
type Sample struct {
	Mz        float64
	Intensity float64
}

// Scan is one spectrum: samples ordered by ascending m/z.
//
// Zero-intensity samples are legal and mark gaps between profile regions.
type Scan []Sample

// Validate checks the scan invariants: ascending m/z and non-negative
// intensities. Detection does not call this on every input; callers reading
// from untrusted sources should.
func (s Scan) Validate() error {
	for i := range s {
		if s[i].Intensity < 0 {
			return ErrNegativeIntensity
		}
		if i > 0 && s[i].Mz < s[i-1].Mz {
			return ErrUnsortedScan
		}
	}
	return nil
}

// Intensities returns a copy of the intensity values in sample order.
func (s Scan) Intensities() []float64 {
	if len(s) == 0 {
		return nil
	}

	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].Intensity
	}
	return out
}

// Mzs returns a copy of the m/z values in sample order.
func (s Scan) Mzs() []float64 {
	if len(s) == 0 {
		return nil
	}

	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].Mz
	}
	return out
}

// FromArrays pairs parallel m/z and intensity slices into a Scan.
// Both slices must have the same length.
func FromArrays(mzs, intensities []float64) (Scan, error) {
	if len(mzs) != len(intensities) {
		return nil, errors.New("ms: m/z and intensity array length mismatch")
	}

	out := make(Scan, len(mzs))
	for i := range mzs {
		out[i] = Sample{Mz: mzs[i], Intensity: intensities[i]}
	}
	return out, nil
}
