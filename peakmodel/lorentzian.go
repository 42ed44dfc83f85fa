package peakmodel

import "math"

// Lorentzian models a mass peak as a Lorentzian (Cauchy) curve. Its heavier
// tails make suppression more aggressive than the Gaussian at the same
// resolution, which suits FTMS shoulder artifacts.
type Lorentzian struct {
	center float64
	height float64
	hwhm   float64
}

func init() {
	Register("lorentzian", func() Model { return &Lorentzian{} })
}

// Configure implements [Model].
func (l *Lorentzian) Configure(centerMz, height, resolution float64) {
	l.center = centerMz
	l.height = height
	l.hwhm = fwhm(centerMz, resolution) / 2
}

// Intensity implements [Model].
func (l *Lorentzian) Intensity(mz float64) float64 {
	if l.hwhm <= 0 {
		return 0
	}

	d := (mz - l.center) / l.hwhm
	return l.height / (1 + d*d)
}

// Width implements [Model].
func (l *Lorentzian) Width(minIntensity float64) Range {
	switch {
	case l.hwhm <= 0 || minIntensity >= l.height:
		return Range{Min: l.center, Max: l.center}
	case minIntensity <= 0:
		return Range{Min: math.Inf(-1), Max: math.Inf(1)}
	}

	d := l.hwhm * math.Sqrt(l.height/minIntensity-1)
	return Range{Min: l.center - d, Max: l.center + d}
}
