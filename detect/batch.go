package detect

import (
	"context"
	"sync"

	"github.com/cwbudde/algo-masspec/ms"
)

// DetectAll runs DetectScan over scans in order.
//
// Cancellation is cooperative and checked between scans only; a scan that
// has started always completes. On cancellation the peaks of the scans
// finished so far are returned together with ctx.Err().
func (d *Detector) DetectAll(ctx context.Context, scans []ms.Scan) ([][]Peak, error) {
	results := make([][]Peak, 0, len(scans))

	for _, scan := range scans {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		results = append(results, d.DetectScan(scan))
	}

	return results, nil
}

// DetectAllParallel runs DetectScan over scans using up to workers
// goroutines. Results keep the input order; entries for scans not processed
// due to cancellation are nil.
//
// Per-scan detection shares no state, so scans may be processed in any
// order concurrently. Cancellation is observed between scans, as with
// [Detector.DetectAll].
func (d *Detector) DetectAllParallel(ctx context.Context, scans []ms.Scan, workers int) ([][]Peak, error) {
	if workers <= 1 || len(scans) <= 1 {
		res, err := d.DetectAll(ctx, scans)
		for len(res) < len(scans) {
			res = append(res, nil)
		}
		return res, err
	}

	if workers > len(scans) {
		workers = len(scans)
	}

	results := make([][]Peak, len(scans))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()

			for idx := range jobs {
				results[idx] = d.DetectScan(scans[idx])
			}
		}()
	}

	var cancelErr error
feed:
	for i := range scans {
		select {
		case <-ctx.Done():
			cancelErr = ctx.Err()
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()

	return results, cancelErr
}
