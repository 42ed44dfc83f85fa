package peakmodel

import "math"

// twoSqrtTwoLn2 relates a Gaussian FWHM to its standard deviation.
const twoSqrtTwoLn2 = 2.3548200450309493

// Gaussian models a mass peak as a Gaussian curve whose FWHM follows from
// the configured resolution.
type Gaussian struct {
	center float64
	height float64
	sigma  float64
}

func init() {
	Register("gaussian", func() Model { return &Gaussian{} })
}

// Configure implements [Model].
func (g *Gaussian) Configure(centerMz, height, resolution float64) {
	g.center = centerMz
	g.height = height
	g.sigma = fwhm(centerMz, resolution) / twoSqrtTwoLn2
}

// Intensity implements [Model].
func (g *Gaussian) Intensity(mz float64) float64 {
	if g.sigma <= 0 {
		return 0
	}

	d := mz - g.center
	return g.height * math.Exp(-d*d/(2*g.sigma*g.sigma))
}

// Width implements [Model].
func (g *Gaussian) Width(minIntensity float64) Range {
	switch {
	case g.sigma <= 0 || minIntensity >= g.height:
		return Range{Min: g.center, Max: g.center}
	case minIntensity <= 0:
		return Range{Min: math.Inf(-1), Max: math.Inf(1)}
	}

	d := g.sigma * math.Sqrt(2*math.Log(g.height/minIntensity))
	return Range{Min: g.center - d, Max: g.center + d}
}

// fwhm returns the full width at half maximum implied by an instrument
// resolution (m/Δm) at the given m/z.
func fwhm(centerMz, resolution float64) float64 {
	if resolution <= 0 {
		return 0
	}

	return centerMz / resolution
}
