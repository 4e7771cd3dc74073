package calculator

import (
	"math"
	"testing"
)

func TestRollingMean(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	got := RollingMean(values, 3)

	for i := 0; i < 2; i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("index %d: expected NaN before window fills, got %v", i, got[i])
		}
	}
	want := []float64{2, 3, 4, 5}
	for i, w := range want {
		if math.Abs(got[i+2]-w) > 1e-12 {
			t.Errorf("index %d: expected %v, got %v", i+2, w, got[i+2])
		}
	}
}

func TestRollingMean_ShortInput(t *testing.T) {
	got := RollingMean([]float64{1, 2}, 5)
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("index %d: expected NaN for input shorter than window, got %v", i, v)
		}
	}
	if len(got) != 2 {
		t.Errorf("expected aligned output length 2, got %d", len(got))
	}
}

func TestRollingMaxMin(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}

	max := RollingMax(values, 3)
	min := RollingMin(values, 3)

	wantMax := []float64{4, 4, 5, 9, 9, 9}
	wantMin := []float64{1, 1, 1, 1, 2, 2}
	for i := range wantMax {
		if max[i+2] != wantMax[i] {
			t.Errorf("max index %d: expected %v, got %v", i+2, wantMax[i], max[i+2])
		}
		if min[i+2] != wantMin[i] {
			t.Errorf("min index %d: expected %v, got %v", i+2, wantMin[i], min[i+2])
		}
	}
}

func TestRollingStdDev(t *testing.T) {
	// Sample stddev of {2,4,4,4,5,5,7,9} is sqrt(32/7).
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	got := RollingStdDev(values, 8)

	want := math.Sqrt(32.0 / 7.0)
	if math.Abs(got[7]-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, got[7])
	}
	for i := 0; i < 7; i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("index %d: expected NaN, got %v", i, got[i])
		}
	}
}

func TestRollingStdDev_ConstantSeries(t *testing.T) {
	values := []float64{5, 5, 5, 5, 5}
	got := RollingStdDev(values, 3)
	for i := 2; i < len(got); i++ {
		if got[i] != 0 {
			t.Errorf("index %d: expected 0 stddev, got %v", i, got[i])
		}
	}
}
