// Package denoise smooths profile scans ahead of mass detection.
//
// Smoothing is a spectral low-pass over the intensity profile: fast
// oscillations from detector noise are attenuated while peak envelopes, which
// live at low spatial frequencies, pass through. Detection semantics are
// unaffected for callers that skip this step.
package denoise

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-masspec/internal/floats"
	"github.com/cwbudde/algo-masspec/ms"
)

var (
	// ErrEmptyScan is returned when there is nothing to smooth.
	ErrEmptyScan = errors.New("denoise: empty scan")
	// ErrCutoff is returned for a cutoff outside (0, 1].
	ErrCutoff = errors.New("denoise: cutoff must be in (0, 1]")
)

// Smooth returns a low-pass filtered copy of scan.
//
// cutoff is the kept fraction of the spatial-frequency band: small values
// smooth aggressively, 1 keeps everything up to a short guard taper at the
// band edge. Sample positions are preserved, intensities are clamped to be
// non-negative, and samples that were exactly zero stay zero so gap
// boundaries seen by detection do not move. Scans shorter than four samples
// are returned as plain copies.
func Smooth(scan ms.Scan, cutoff float64) (ms.Scan, error) {
	if len(scan) == 0 {
		return nil, ErrEmptyScan
	}
	if cutoff <= 0 || cutoff > 1 {
		return nil, fmt.Errorf("%w: %g", ErrCutoff, cutoff)
	}

	n := len(scan)
	out := make(ms.Scan, n)
	copy(out, scan)
	if n < 4 {
		return out, nil
	}

	fftSize := floats.NextPow2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("denoise: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i := range scan {
		in[i] = complex(scan[i].Intensity, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("denoise: forward FFT: %w", err)
	}

	mask := lowpassMask(fftSize, cutoff)

	re := make([]float64, fftSize)
	im := make([]float64, fftSize)
	for i, c := range freq {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.MulBlockInPlace(re, mask)
	vecmath.MulBlockInPlace(im, mask)

	for i := range freq {
		freq[i] = complex(re[i], im[i])
	}

	smoothed := make([]complex128, fftSize)
	if err := plan.Inverse(smoothed, freq); err != nil {
		return nil, fmt.Errorf("denoise: inverse FFT: %w", err)
	}

	for i := range out {
		if scan[i].Intensity == 0 {
			continue
		}

		v := real(smoothed[i])
		if v < 0 {
			v = 0
		}
		out[i].Intensity = v
	}

	return out, nil
}

// lowpassMask returns per-bin gains for a symmetric low-pass filter with a
// short raised-cosine transition to limit ringing.
func lowpassMask(fftSize int, cutoff float64) []float64 {
	half := float64(fftSize / 2)
	edge := cutoff * half
	trans := math.Max(2, 0.1*edge)

	mask := make([]float64, fftSize)
	for k := range mask {
		idx := float64(k)
		if idx > half {
			idx = float64(fftSize - k)
		}

		switch {
		case idx <= edge-trans:
			mask[k] = 1
		case idx >= edge:
			mask[k] = 0
		default:
			mask[k] = 0.5 * (1 + math.Cos(math.Pi*(idx-(edge-trans))/trans))
		}
	}

	return mask
}
