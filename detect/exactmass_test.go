package detect

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-masspec/ms"
)

func TestExactMassTriangularPeak(t *testing.T) {
	// Piecewise-linear flanks with analytically known half-max crossings.
	// half = 50: left crossing at 99.975, right crossing at 100.032.
	c := &Peak{
		Mz:        100.0,
		Intensity: 100,
		Support: []ms.Sample{
			{Mz: 99.96, Intensity: 20}, {Mz: 99.98, Intensity: 60},
			{Mz: 100.02, Intensity: 80}, {Mz: 100.04, Intensity: 30},
		},
	}

	want := (99.975 + 100.032) / 2
	if got := exactMass(c); math.Abs(got-want) > 1e-12 {
		t.Fatalf("exact mass = %.12f, want %.12f", got, want)
	}
}

func TestExactMassLeftScanKeepsLastCrossing(t *testing.T) {
	// Two qualifying crossings on the left flank. The refiner keeps the
	// last one (at 99.94 + 1/150) rather than the first (at 99.916).
	c := &Peak{
		Mz:        100.0,
		Intensity: 100,
		Support: []ms.Sample{
			{Mz: 99.90, Intensity: 10}, {Mz: 99.92, Intensity: 60}, {Mz: 99.94, Intensity: 40}, {Mz: 99.96, Intensity: 70},
			{Mz: 100.02, Intensity: 60}, {Mz: 100.04, Intensity: 10},
		},
	}

	xLeft := 99.94 + 10.0/1500.0
	xRight := 100.024
	want := xLeft + (xRight-xLeft)/2

	got := exactMass(c)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("exact mass = %.12f, want %.12f", got, want)
	}

	firstCrossing := 99.916 + (100.024-99.916)/2
	if math.Abs(got-firstCrossing) < 1e-9 {
		t.Fatalf("refiner used the first left crossing; must keep the last")
	}
}

func TestExactMassRightScanStopsAtFirstCrossing(t *testing.T) {
	// Two qualifying crossings on the right flank. The refiner stops at
	// the first (100.03) and never sees the second (~100.0629).
	c := &Peak{
		Mz:        100.0,
		Intensity: 100,
		Support: []ms.Sample{
			{Mz: 99.96, Intensity: 20}, {Mz: 99.98, Intensity: 60},
			{Mz: 100.02, Intensity: 60}, {Mz: 100.04, Intensity: 40}, {Mz: 100.06, Intensity: 55}, {Mz: 100.08, Intensity: 20},
		},
	}

	want := (99.975 + 100.03) / 2
	if got := exactMass(c); math.Abs(got-want) > 1e-12 {
		t.Fatalf("exact mass = %.12f, want %.12f", got, want)
	}
}

func TestExactMassDegenerateSlopeFallsBack(t *testing.T) {
	// The only qualifying left pair sits on a vertical segment (duplicate
	// m/z). It must be rejected without producing NaN or Inf, and the
	// apex m/z returned unchanged.
	c := &Peak{
		Mz:        100.0,
		Intensity: 100,
		Support: []ms.Sample{
			{Mz: 99.96, Intensity: 10}, {Mz: 99.98, Intensity: 20}, {Mz: 99.98, Intensity: 60},
			{Mz: 100.02, Intensity: 80}, {Mz: 100.04, Intensity: 30},
		},
	}

	got := exactMass(c)
	if got != 100.0 {
		t.Fatalf("exact mass = %v, want unrefined apex 100.0", got)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("degenerate slope leaked into result: %v", got)
	}
}

func TestExactMassFlatPairRejected(t *testing.T) {
	// A flat segment exactly at half intensity has zero slope; the pair
	// is skipped and the next qualifying pair provides the crossing.
	c := &Peak{
		Mz:        100.0,
		Intensity: 100,
		Support: []ms.Sample{
			{Mz: 99.94, Intensity: 50}, {Mz: 99.96, Intensity: 50}, {Mz: 99.98, Intensity: 80},
			{Mz: 100.02, Intensity: 80}, {Mz: 100.04, Intensity: 30},
		},
	}

	// Left crossing from (99.96,50)-(99.98,80): x = 99.96 exactly.
	// Right crossing from (100.02,80)-(100.04,30): x = 100.032.
	want := (99.96 + 100.032) / 2
	if got := exactMass(c); math.Abs(got-want) > 1e-12 {
		t.Fatalf("exact mass = %.12f, want %.12f", got, want)
	}
}

func TestExactMassMissingCrossing(t *testing.T) {
	cases := []struct {
		name    string
		support []ms.Sample
	}{
		{"empty support", nil},
		{"single sample", []ms.Sample{{Mz: 99.98, Intensity: 40}}},
		{"no left crossing", []ms.Sample{{Mz: 100.02, Intensity: 80}, {Mz: 100.04, Intensity: 30}}},
		{"no right crossing", []ms.Sample{{Mz: 99.96, Intensity: 20}, {Mz: 99.98, Intensity: 60}}},
	}

	for _, tc := range cases {
		c := &Peak{Mz: 100.0, Intensity: 100, Support: tc.support}
		if got := exactMass(c); got != 100.0 {
			t.Fatalf("%s: exact mass = %v, want unrefined apex", tc.name, got)
		}
	}
}
