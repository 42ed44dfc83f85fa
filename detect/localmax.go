package detect

import "github.com/cwbudde/algo-masspec/ms"

// localMaxima segments a scan into candidate peaks using the local-maximum
// criterion and returns them pooled in descending intensity order.
//
// The walk skips zero-intensity samples (gaps) and accumulates the rising
// flank into the support region. The first sample whose successor does not
// exceed it becomes the apex; the apex itself is excluded from the support
// region, so only flank samples feed the exact-mass refinement later. The
// falling flank accumulates until a zero sample or a new rising slope closes
// the region; only then is a candidate emitted, and only when its apex
// intensity strictly exceeds noiseLevel. A region still open at the end of
// the scan is discarded.
func localMaxima(scan ms.Scan, noiseLevel float64) *candidatePool {
	pool := newCandidatePool()
	if len(scan) < 2 {
		return pool
	}

	var (
		support   []ms.Sample
		apex      ms.Sample
		ascending = true
	)

	for i := 0; i+1 < len(scan); i++ {
		cur, next := scan[i], scan[i+1]

		if cur.Intensity == 0 {
			continue
		}

		support = append(support, cur)

		if ascending && next.Intensity <= cur.Intensity {
			apex = cur
			support = support[:len(support)-1]
			ascending = false
			if next.Intensity != 0 {
				continue
			}
			// A zero sample directly after the apex closes the
			// region in the same step.
		}

		if !ascending && (next.Intensity > cur.Intensity || next.Intensity == 0) {
			if apex.Intensity > noiseLevel {
				flank := make([]ms.Sample, len(support))
				copy(flank, support)
				pool.add(Peak{Mz: apex.Mz, Intensity: apex.Intensity, Support: flank})
			}

			ascending = true
			support = support[:0]
		}
	}

	return pool
}
