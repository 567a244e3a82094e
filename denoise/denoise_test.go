package denoise_test

import (
	"math"
	"testing"

	"github.com/prophetizo/vectorwave-go/denoise"
	"github.com/prophetizo/vectorwave-go/internal/testtool"
	"github.com/prophetizo/vectorwave-go/modwt"
)

// TestDenoiseZeroSignalIsIdempotent covers P6: denoise(0) = 0 exactly,
// via the NumericDegeneracy policy (sigma=0 implies tau=0 for every
// level, a no-op shrinkage).
func TestDenoiseZeroSignalIsIdempotent(t *testing.T) {
	dn, err := denoise.New("db4", modwt.Periodic)
	if err != nil {
		t.Fatal(err)
	}
	zero := make([]float64, 256)
	out, _, err := dn.Denoise(zero, 3)
	if err != nil {
		t.Fatal(err)
	}
	testtool.RequireSliceNearlyEqual(t, out, zero, 0)
}

// TestDenoiseDB4UniversalSoftSNRImprovement covers the literal scenario:
// N=500, J=4, clean = sin(2pi i/32) + 0.5 sin(2pi i/8), additive Gaussian
// noise sigma=0.2 (seed=42); expected SNR improvement >= 6dB.
func TestDenoiseDB4UniversalSoftSNRImprovement(t *testing.T) {
	const n = 500
	clean := make([]float64, n)
	for i := range clean {
		clean[i] = math.Sin(2*math.Pi*float64(i)/32) + 0.5*math.Sin(2*math.Pi*float64(i)/8)
	}
	noise := testtool.GaussianNoise(42, 0.2, n)
	noisy := make([]float64, n)
	for i := range noisy {
		noisy[i] = clean[i] + noise[i]
	}

	dn, err := denoise.New("db4", modwt.Periodic, denoise.WithMethod(denoise.Universal), denoise.WithType(denoise.Soft))
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := dn.Denoise(noisy, 4)
	if err != nil {
		t.Fatal(err)
	}

	snrBefore := snrDB(clean, noisy)
	snrAfter := snrDB(clean, out)
	if improvement := snrAfter - snrBefore; improvement < 6 {
		t.Fatalf("SNR improvement = %.2f dB, want >= 6 dB (before=%.2f after=%.2f)", improvement, snrBefore, snrAfter)
	}
}

func snrDB(clean, observed []float64) float64 {
	var signalPower, noisePower float64
	for i := range clean {
		signalPower += clean[i] * clean[i]
		diff := observed[i] - clean[i]
		noisePower += diff * diff
	}
	if noisePower == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(signalPower/noisePower)
}

// TestSoftThresholdMonotonicity covers P7: increasing tau monotonically
// decreases sum(d^2) after soft thresholding.
func TestSoftThresholdMonotonicity(t *testing.T) {
	d := testtool.DeterministicSine(7, 256, 1.0, 128)
	prevEnergy := math.Inf(1)
	for _, tau := range []float64{0, 0.1, 0.3, 0.5, 0.8, 1.5} {
		shrunk := softThresholdForTest(d, tau)
		energy := 0.0
		for _, v := range shrunk {
			energy += v * v
		}
		if energy > prevEnergy {
			t.Fatalf("energy increased at tau=%v: %v > %v", tau, energy, prevEnergy)
		}
		prevEnergy = energy
	}
}

func softThresholdForTest(d []float64, tau float64) []float64 {
	out := make([]float64, len(d))
	for i, v := range d {
		mag := math.Abs(v) - tau
		if mag < 0 {
			mag = 0
		}
		out[i] = math.Copysign(mag, v)
	}
	return out
}

func TestDenoiseLevelLimitExceeded(t *testing.T) {
	dn, err := denoise.New("db4", modwt.Periodic)
	if err != nil {
		t.Fatal(err)
	}
	x := testtool.Ramp(20)
	if _, _, err := dn.Denoise(x, 10); err == nil {
		t.Fatal("expected an error for levels beyond Jmax")
	}
}

func TestSUREAndMinimaxMethodsProduceFiniteOutput(t *testing.T) {
	x := testtool.DeterministicSine(11, 500, 1.0, 256)
	for _, m := range []denoise.Method{denoise.SURE, denoise.Minimax} {
		dn, err := denoise.New("db4", modwt.Periodic, denoise.WithMethod(m), denoise.WithType(denoise.Hard))
		if err != nil {
			t.Fatal(err)
		}
		out, _, err := dn.Denoise(x, 3)
		if err != nil {
			t.Fatal(err)
		}
		testtool.RequireFinite(t, out)
	}
}

func TestInvalidThresholdMethodRejected(t *testing.T) {
	if _, err := denoise.New("db4", modwt.Periodic, denoise.WithMethod(denoise.Method(99))); err == nil {
		t.Fatal("expected ErrInvalidThresholdMethod")
	}
}

func TestStreamingDenoiserAccessors(t *testing.T) {
	sd, err := denoise.NewStreaming("db4", modwt.Periodic, 2, denoise.Adaptive, 512)
	if err != nil {
		t.Fatal(err)
	}
	block := testtool.DeterministicSine(9, 500, 1.0, 128)
	if _, err := sd.ProcessBlock(block); err != nil {
		t.Fatal(err)
	}
	if sd.SamplesProcessed() != 128 {
		t.Fatalf("SamplesProcessed() = %d, want 128", sd.SamplesProcessed())
	}
	if sd.CurrentNoiseLevel() < 0 {
		t.Fatal("expected non-negative noise level")
	}
}
