package scan_test

import (
	"fmt"

	"github.com/cwbudde/algo-masspec/ms"
	scanstats "github.com/cwbudde/algo-masspec/stats/scan"
)

func ExampleCalculate() {
	s := ms.Scan{
		{Mz: 100.0, Intensity: 0}, {Mz: 100.1, Intensity: 5},
		{Mz: 100.2, Intensity: 50}, {Mz: 100.3, Intensity: 5},
	}

	st := scanstats.Calculate(s)
	fmt.Printf("base peak %.1f tic %.0f\n", st.BasePeakMz, st.TIC)

	// Output:
	// base peak 100.2 tic 60
}
