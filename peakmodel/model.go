// Package peakmodel provides analytic mass-peak shape models used as the
// suppression oracle during shoulder-peak removal.
//
// A model is parameterized once per accepted peak via [Model.Configure] and
// then queried for predicted intensities and curve widths. Implementations
// are registered by name (see [Register]) and instantiated through their
// factory, so every accepted peak evaluates against a fresh instance.
package peakmodel

// Range is a closed m/z interval.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether mz lies inside the interval.
func (r Range) Contains(mz float64) bool {
	return mz >= r.Min && mz <= r.Max
}

// Width returns the interval length.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Model is an analytic peak shape evaluated around a single configured peak.
//
// Configure must fully reset the instance; no state survives from a previous
// configuration. Instances are not safe for concurrent use.
type Model interface {
	// Configure parameterizes the model with the peak apex position, apex
	// height and the instrument resolution (m/Δm, determining the FWHM as
	// centerMz/resolution).
	Configure(centerMz, height, resolution float64)

	// Intensity returns the modeled intensity at mz.
	Intensity(mz float64) float64

	// Width returns the m/z interval, centered on the configured peak,
	// within which the modeled curve is at least minIntensity.
	Width(minIntensity float64) Range
}

// Factory creates an unconfigured model instance.
type Factory func() Model
