package detect

// removeShoulders drops every remaining candidate that the configured peak
// shape model explains as a lateral artifact of the accepted peak.
//
// The model is configured with the accepted peak's refined m/z, its apex
// intensity and the detector resolution. A candidate is suppressed when its
// apex lies inside the modeled curve's width at the noise level and its
// intensity stays below the modeled curve at that m/z. Without a usable
// model the pool is left untouched.
func (d *Detector) removeShoulders(pool *candidatePool, accepted *Peak) {
	if d.factory == nil {
		if d.cfg.PeakModel != "" {
			d.log.WithField("model", d.cfg.PeakModel).
				Warn("unknown peak model, skipping shoulder removal")
		}
		return
	}

	// Fresh instance per accepted peak; model state never crosses peaks.
	model := d.factory()
	model.Configure(accepted.Mz, accepted.Intensity, float64(d.cfg.Resolution))

	width := model.Width(d.cfg.NoiseLevel)

	pool.each(func(idx int, c *Peak) {
		if width.Contains(c.Mz) && c.Intensity < model.Intensity(c.Mz) {
			pool.remove(idx)
		}
	})
}
