package ms

import (
	"errors"
	"testing"
)

func TestValidateAccepts(t *testing.T) {
	s := Scan{{100.0, 0}, {100.1, 5}, {100.1, 7}, {100.2, 0}}
	if err := s.Validate(); err != nil {
		t.Fatalf("valid scan rejected: %v", err)
	}
}

func TestValidateUnsorted(t *testing.T) {
	s := Scan{{100.2, 1}, {100.1, 2}}
	if err := s.Validate(); !errors.Is(err, ErrUnsortedScan) {
		t.Fatalf("err = %v, want ErrUnsortedScan", err)
	}
}

func TestValidateNegativeIntensity(t *testing.T) {
	s := Scan{{100.0, -1}}
	if err := s.Validate(); !errors.Is(err, ErrNegativeIntensity) {
		t.Fatalf("err = %v, want ErrNegativeIntensity", err)
	}
}

func TestFromArrays(t *testing.T) {
	s, err := FromArrays([]float64{1, 2}, []float64{10, 20})
	if err != nil {
		t.Fatalf("FromArrays: %v", err)
	}
	if len(s) != 2 || s[1] != (Sample{2, 20}) {
		t.Fatalf("unexpected scan: %#v", s)
	}

	if _, err := FromArrays([]float64{1}, nil); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestArrayAccessors(t *testing.T) {
	s := Scan{{100.0, 1}, {101.0, 2}}

	mzs := s.Mzs()
	ints := s.Intensities()
	if mzs[0] != 100.0 || mzs[1] != 101.0 {
		t.Fatalf("unexpected mzs: %v", mzs)
	}
	if ints[0] != 1 || ints[1] != 2 {
		t.Fatalf("unexpected intensities: %v", ints)
	}

	// Accessors copy; mutating the copy must not touch the scan.
	mzs[0] = 0
	if s[0].Mz != 100.0 {
		t.Fatalf("Mzs returned a view, want a copy")
	}

	if Scan(nil).Mzs() != nil || Scan(nil).Intensities() != nil {
		t.Fatalf("empty scan accessors should return nil")
	}
}
