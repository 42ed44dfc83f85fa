package detect

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-masspec/ms"
	"github.com/cwbudde/algo-masspec/peakmodel"
)

var (
	// ErrNoiseLevel is returned for a negative noise level.
	ErrNoiseLevel = errors.New("detect: noise level must be >= 0")
	// ErrResolution is returned for a zero or negative resolution.
	ErrResolution = errors.New("detect: resolution must be > 0")
)

// Peak is one detected mass peak.
type Peak struct {
	// Mz is the apex m/z, refined to the FWHM midpoint when the peak's
	// flanks allow it.
	Mz float64
	// Intensity is the apex intensity as acquired. It is never modified.
	Intensity float64
	// Support holds the contiguous non-zero flank samples around the
	// apex, ascending by m/z. The apex sample itself is not included.
	Support []ms.Sample
}

// Config holds detection parameters for one Detector.
type Config struct {
	// NoiseLevel is the intensity floor; only local maxima strictly above
	// it become peaks. Must be >= 0.
	NoiseLevel float64
	// Resolution is the instrument resolution (m/Δm) used to parameterize
	// the peak shape model. Must be > 0.
	Resolution int
	// PeakModel names a model registered with the peakmodel package
	// ("gaussian", "lorentzian"). An empty name disables shoulder
	// suppression; an unknown name degrades to the same, with a warning
	// logged per accepted peak.
	PeakModel string
	// Logger receives degradation warnings. Defaults to the logrus
	// standard logger.
	Logger logrus.FieldLogger
}

// Detector detects mass peaks in single scans.
//
// A Detector holds no per-scan state and may be used concurrently for
// different scans; each invocation configures its own model instances.
type Detector struct {
	cfg     Config
	factory peakmodel.Factory
	log     logrus.FieldLogger
}

// New validates cfg and returns a Detector.
//
// Configuration values are rejected eagerly here; an unresolvable peak model
// name is not an error (detection still runs, without suppression).
func New(cfg Config) (*Detector, error) {
	if cfg.NoiseLevel < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNoiseLevel, cfg.NoiseLevel)
	}
	if cfg.Resolution <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrResolution, cfg.Resolution)
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	d := &Detector{cfg: cfg, log: cfg.Logger}
	if cfg.PeakModel != "" {
		if f, ok := peakmodel.Lookup(cfg.PeakModel); ok {
			d.factory = f
		}
	}

	return d, nil
}

// DetectScan returns the peaks of one scan, ascending by m/z.
//
// Candidates are accepted in descending intensity order. Each accepted peak
// is refined to its exact mass and then used to suppress weaker candidates
// that the peak shape model explains as its shoulders. Scans with fewer than
// two samples yield an empty result.
func (d *Detector) DetectScan(scan ms.Scan) []Peak {
	pool := localMaxima(scan, d.cfg.NoiseLevel)

	peaks := make([]Peak, 0, pool.len())
	for pool.len() > 0 {
		c := pool.popMax()
		c.Mz = exactMass(c)
		peaks = append(peaks, *c)

		d.removeShoulders(pool, c)
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Mz < peaks[j].Mz
	})

	return peaks
}
