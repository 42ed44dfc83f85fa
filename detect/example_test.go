package detect_test

import (
	"fmt"

	"github.com/cwbudde/algo-masspec/detect"
	"github.com/cwbudde/algo-masspec/ms"
)

func ExampleDetector_DetectScan() {
	scan := ms.Scan{
		{Mz: 100.0, Intensity: 0}, {Mz: 100.1, Intensity: 5},
		{Mz: 100.2, Intensity: 50}, {Mz: 100.3, Intensity: 5},
		{Mz: 100.4, Intensity: 0}, {Mz: 105.0, Intensity: 20},
		{Mz: 105.1, Intensity: 0},
	}

	det, err := detect.New(detect.Config{
		NoiseLevel: 1,
		Resolution: 1000,
		PeakModel:  "gaussian",
	})
	if err != nil {
		panic(err)
	}

	for _, p := range det.DetectScan(scan) {
		fmt.Printf("m/z %.1f intensity %.0f\n", p.Mz, p.Intensity)
	}

	// Output:
	// m/z 100.2 intensity 50
	// m/z 105.0 intensity 20
}
