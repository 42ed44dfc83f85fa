package floats

import "testing"

func TestNextPow2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 1000: 1024, 1024: 1024}
	for in, want := range cases {
		if got := NextPow2(in); got != want {
			t.Fatalf("NextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestMedian(t *testing.T) {
	if m := Median([]float64{3, 1, 2}); m != 2 {
		t.Fatalf("odd median = %v, want 2", m)
	}
	if m := Median([]float64{4, 1, 2, 3}); m != 2.5 {
		t.Fatalf("even median = %v, want 2.5", m)
	}
	if m := Median(nil); m != 0 {
		t.Fatalf("empty median = %v, want 0", m)
	}

	in := []float64{3, 1, 2}
	_ = Median(in)
	if in[0] != 3 {
		t.Fatalf("Median mutated its input: %v", in)
	}
}

func TestMAD(t *testing.T) {
	// median = 3, deviations = {2,1,0,1,2}, MAD = 1.
	if m := MAD([]float64{1, 2, 3, 4, 5}); m != 1 {
		t.Fatalf("MAD = %v, want 1", m)
	}
}
