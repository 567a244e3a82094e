package denoise

import (
	"math"
	"testing"
)

func TestApplyThresholdSoft(t *testing.T) {
	d := []float64{3, -3, 0.5, -0.5}
	got := applyThreshold(d, 1, Soft)
	want := []float64{2, -2, 0, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestApplyThresholdHard(t *testing.T) {
	d := []float64{3, -3, 0.5, -0.5}
	got := applyThreshold(d, 1, Hard)
	want := []float64{3, -3, 0, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSureThresholdWithinRange(t *testing.T) {
	d := []float64{0.1, 0.2, 5.0, 0.3, -0.2, -4.8}
	tau := sureThreshold(d)
	if tau < 0 {
		t.Fatalf("tau = %v, want >= 0", tau)
	}
	maxAbs := 0.0
	for _, v := range d {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if tau > maxAbs {
		t.Fatalf("tau = %v exceeds max|d| = %v", tau, maxAbs)
	}
}

func TestMinimaxMultiplierZeroForSmallN(t *testing.T) {
	if got := minimaxMultiplier(16); got != 0 {
		t.Fatalf("minimaxMultiplier(16) = %v, want 0", got)
	}
}

func TestMinimaxMultiplierMonotonicInN(t *testing.T) {
	a := minimaxMultiplier(64)
	b := minimaxMultiplier(256)
	if b <= a {
		t.Fatalf("expected minimax multiplier to increase with N: %v <= %v", b, a)
	}
}
