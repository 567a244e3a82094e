package modwt_test

import (
	"errors"
	"testing"

	"github.com/prophetizo/vectorwave-go/internal/pool"
	"github.com/prophetizo/vectorwave-go/internal/testtool"
	"github.com/prophetizo/vectorwave-go/modwt"
)

func TestNewUnknownWavelet(t *testing.T) {
	if _, err := modwt.New("not-a-wavelet"); err == nil {
		t.Fatal("expected error for unknown wavelet")
	}
}

func TestNewContinuousWaveletRejected(t *testing.T) {
	if _, err := modwt.New("morlet"); !errors.Is(err, modwt.ErrContinuousWavelet) {
		t.Fatalf("expected ErrContinuousWavelet, got %v", err)
	}
}

// TestHaarPerfectReconstructionN7 covers the literal Haar N=7 scenario:
// single-level forward/inverse round trip must reconstruct exactly under
// Periodic boundaries (P1).
func TestHaarPerfectReconstructionN7(t *testing.T) {
	tr, err := modwt.New("haar")
	if err != nil {
		t.Fatal(err)
	}
	x := testtool.Ramp(7)

	res, err := tr.Forward(x)
	if err != nil {
		t.Fatal(err)
	}
	recon, err := tr.Inverse(res.Approx(), res.Detail())
	if err != nil {
		t.Fatal(err)
	}
	testtool.RequireSliceNearlyEqual(t, recon, x, 1e-9)
}

func TestSignalShorterThanFilterRejected(t *testing.T) {
	tr, err := modwt.New("db4")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Forward([]float64{1, 2, 3}); !errors.Is(err, modwt.ErrInvalidSignalLength) {
		t.Fatalf("expected ErrInvalidSignalLength, got %v", err)
	}
}

func TestInverseShapeMismatch(t *testing.T) {
	tr, err := modwt.New("haar")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Inverse(make([]float64, 4), make([]float64, 5)); !errors.Is(err, modwt.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

// TestShiftInvariance covers P3: forward transform of a cyclically shifted
// signal equals a cyclic shift of the original forward transform, under
// Periodic boundaries.
func TestShiftInvariance(t *testing.T) {
	tr, err := modwt.New("db4")
	if err != nil {
		t.Fatal(err)
	}
	x := testtool.DeterministicSine(5, 256, 1.0, 128)
	shifted := testtool.Shift(x, 3)

	r1, err := tr.Forward(x)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := tr.Forward(shifted)
	if err != nil {
		t.Fatal(err)
	}

	wantApprox := testtool.Shift(r1.Approx(), 3)
	testtool.RequireSliceNearlyEqual(t, r2.Approx(), wantApprox, 1e-6)
}

func TestZeroPaddingRoundTripIsFinite(t *testing.T) {
	tr, err := modwt.New("db4", modwt.WithBoundary(modwt.ZeroPadding))
	if err != nil {
		t.Fatal(err)
	}
	x := testtool.DeterministicSine(7, 128, 1.0, 100)
	res, err := tr.Forward(x)
	if err != nil {
		t.Fatal(err)
	}
	recon, err := tr.Inverse(res.Approx(), res.Detail())
	if err != nil {
		t.Fatal(err)
	}
	testtool.RequireFinite(t, recon)
}

func TestPerformanceInfoReportsKernel(t *testing.T) {
	tr, err := modwt.New("db4")
	if err != nil {
		t.Fatal(err)
	}
	x := testtool.DeterministicNoise(1, 1.0, 200)
	if _, err := tr.Forward(x); err != nil {
		t.Fatal(err)
	}
	info := tr.PerformanceInfo()
	if info.LastKernel == "" {
		t.Fatal("expected non-empty LastKernel")
	}
}

// TestWithPoolReusesScratchBuffersWithoutAffectingResult covers spec.md
// §4.7: attaching a pool changes nothing about Inverse's output, only
// where its transient scratch buffers come from.
func TestWithPoolReusesScratchBuffersWithoutAffectingResult(t *testing.T) {
	p := pool.New(4)
	tr, err := modwt.New("db4", modwt.WithPool(p))
	if err != nil {
		t.Fatal(err)
	}
	x := testtool.DeterministicSine(3, 256, 1.0, 128)

	res, err := tr.Forward(x)
	if err != nil {
		t.Fatal(err)
	}
	recon, err := tr.Inverse(res.Approx(), res.Detail())
	if err != nil {
		t.Fatal(err)
	}
	testtool.RequireSliceNearlyEqual(t, recon, x, 1e-9)

	if _, err := tr.Inverse(res.Approx(), res.Detail()); err != nil {
		t.Fatal(err)
	}
	hits, _ := p.Stats()
	if hits == 0 {
		t.Fatal("expected the second Inverse call to reuse a pooled buffer")
	}
}

func TestJmaxFloorsAtOne(t *testing.T) {
	tr, err := modwt.New("db4")
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Jmax(9); got != 1 {
		t.Fatalf("Jmax(9) = %d, want 1", got)
	}
}
