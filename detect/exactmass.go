package detect

import (
	"math"

	"github.com/cwbudde/algo-masspec/ms"
)

// exactMass computes a refined apex m/z as the midpoint of the candidate's
// full width at half maximum, linearly interpolated from its support samples.
//
// The support is scanned for adjacent sample pairs straddling half the apex
// intensity. On the left flank the last qualifying pair wins; on the right
// flank the scan stops at the first. Downstream mass lists depend on this
// asymmetry; a regression test pins it.
//
// When either crossing is missing, or a qualifying pair is degenerate (flat
// or vertical segment), refinement fails for that side and the unrefined
// apex m/z is returned.
func exactMass(c *Peak) float64 {
	half := c.Intensity / 2
	xLeft := math.NaN()
	xRight := math.NaN()

	s := c.Support
	for i := 0; i+1 < len(s); i++ {
		p0, p1 := s[i], s[i+1]

		if p0.Mz < c.Mz && p0.Intensity <= half && p1.Intensity >= half {
			if x, ok := halfCrossing(p0, p1, half); ok {
				xLeft = x
			}
			continue
		}

		if p0.Mz > c.Mz && p0.Intensity >= half && p1.Intensity <= half {
			if x, ok := halfCrossing(p0, p1, half); ok {
				xRight = x
			}
			break
		}
	}

	if math.IsNaN(xLeft) || math.IsNaN(xRight) {
		return c.Mz
	}

	return xLeft + (xRight-xLeft)/2
}

// halfCrossing solves the line through p0 and p1 for the m/z at the target
// intensity. Pairs with zero or undefined slope are rejected so the division
// can never produce NaN or Inf.
func halfCrossing(p0, p1 ms.Sample, target float64) (float64, bool) {
	dx := p0.Mz - p1.Mz
	dy := p0.Intensity - p1.Intensity
	if dx == 0 || dy == 0 {
		return 0, false
	}

	slope := dy / dx
	return p0.Mz + (target-p0.Intensity)/slope, true
}
