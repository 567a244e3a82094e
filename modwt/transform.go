package modwt

import (
	"fmt"
	"math"

	"github.com/prophetizo/vectorwave-go/modwt/internal/kernel"
	"github.com/prophetizo/vectorwave-go/wavelet"
)

// Transform performs single-level and multi-level MODWT forward and
// inverse transforms for one wavelet, with per-level filter caching and
// kernel-dispatch diagnostics. A Transform is safe for concurrent use
// across goroutines once constructed; its filterSet is the only shared
// mutable state and is itself lock-protected.
type Transform struct {
	wavelet wavelet.Wavelet
	cfg     Config
	filters *filterSet

	lastKernel kernel.Kind
}

// New constructs a Transform for the named wavelet. Returns
// ErrUnknownWavelet if the name is not in the catalog, or
// ErrContinuousWavelet if it names a continuous (filterless) wavelet.
func New(name string, opts ...Option) (*Transform, error) {
	w, err := wavelet.Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewFromWavelet(w, opts...)
}

// NewFromWavelet constructs a Transform from an already-resolved
// wavelet, e.g. one supplied directly rather than looked up by name.
func NewFromWavelet(w wavelet.Wavelet, opts ...Option) (*Transform, error) {
	if w.Kind == wavelet.Continuous {
		return nil, ErrContinuousWavelet
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.boundary.valid() {
		return nil, ErrInvalidBoundaryMode
	}

	return &Transform{
		wavelet: w,
		cfg:     cfg,
		filters: newFilterSet(w),
	}, nil
}

// Wavelet returns the wavelet this Transform decomposes with.
func (t *Transform) Wavelet() wavelet.Wavelet { return t.wavelet }

// Jmax returns the maximum decomposition depth supported for a signal
// of length n against this Transform's wavelet: floor(log2(n/(L-1)+1)),
// floored at 1.
func (t *Transform) Jmax(n int) int {
	return jmax(n, t.wavelet.FilterLength())
}

func jmax(n, l int) int {
	if l <= 1 {
		return 1
	}
	j := int(math.Log2(float64(n)/float64(l-1) + 1))
	if j < 1 {
		j = 1
	}
	return j
}

// PerformanceInfo reports the platform capability and the kernel variant
// the most recent Forward/Inverse call dispatched to.
func (t *Transform) PerformanceInfo() PerformanceInfo {
	return performanceInfoFromKernel(t.lastKernel)
}

// Forward computes the single-level MODWT decomposition of x: approximation
// (low-pass) and detail (high-pass) coefficients, both length N = len(x).
// Returns ErrInvalidSignalLength if N is shorter than the wavelet's filter.
func (t *Transform) Forward(x []float64) (Result, error) {
	n := len(x)
	l := t.wavelet.FilterLength()
	if n < l {
		return Result{}, fmt.Errorf("%w: N=%d L=%d", ErrInvalidSignalLength, n, l)
	}

	pair := t.filters.getAnalysis(1)
	approx := make([]float64, n)
	detail := make([]float64, n)

	kindA := kernel.Convolve(approx, x, pair.h0, t.cfg.boundary.toKernel(), kernel.Forward, t.cfg.simdEnabled)
	_ = kernel.Convolve(detail, x, pair.h1, t.cfg.boundary.toKernel(), kernel.Forward, t.cfg.simdEnabled)
	t.lastKernel = kindA

	return newResult(approx, detail), nil
}

// Inverse reconstructs a signal of length N from single-level
// approximation and detail coefficients, using the synthesis filters
// g0/g1 (equal to h0/h1 for orthogonal wavelets, independent for
// biorthogonal ones). For biorthogonal wavelets under Periodic boundaries,
// the reconstruction is cyclically shifted by the wavelet's GroupDelay to
// compensate for filter asymmetry. Returns ErrShapeMismatch if approx and
// detail differ in length.
func (t *Transform) Inverse(approx, detail []float64) ([]float64, error) {
	if len(approx) != len(detail) {
		return nil, ErrShapeMismatch
	}
	n := len(approx)

	pair := t.filters.getSynthesis(1)
	fromApprox := t.scratch(n)
	fromDetail := t.scratch(n)

	kindA := kernel.Convolve(fromApprox, approx, pair.h0, t.cfg.boundary.toKernel(), kernel.Inverse, t.cfg.simdEnabled)
	_ = kernel.Convolve(fromDetail, detail, pair.h1, t.cfg.boundary.toKernel(), kernel.Inverse, t.cfg.simdEnabled)
	t.lastKernel = kindA

	out := make([]float64, n)
	for i := range out {
		out[i] = fromApprox[i] + fromDetail[i]
	}
	t.release(fromApprox)
	t.release(fromDetail)
	return t.compensateGroupDelay(out), nil
}

// scratch returns a length-n buffer for transient, fully-overwritten
// intermediate results: from the configured pool if one is attached,
// else a fresh allocation.
func (t *Transform) scratch(n int) []float64 {
	if t.cfg.pool == nil {
		return make([]float64, n)
	}
	return t.cfg.pool.Get(n)
}

// release returns a scratch buffer obtained from scratch to the
// configured pool, if any; a no-op when no pool is attached.
func (t *Transform) release(buf []float64) {
	if t.cfg.pool != nil {
		t.cfg.pool.Put(buf)
	}
}

// compensateGroupDelay cyclically shifts a reconstructed signal by the
// wavelet's GroupDelay when the wavelet is biorthogonal and the boundary
// mode is Periodic; this is a no-op for orthogonal wavelets (GroupDelay
// is always 0) and for ZeroPadding (edge artifacts are expected and no
// phase compensation is attempted there, per spec's open question on
// biorthogonal ZeroPadding behavior).
func (t *Transform) compensateGroupDelay(x []float64) []float64 {
	if t.wavelet.Kind != wavelet.Biorthogonal || t.wavelet.GroupDelay == 0 || t.cfg.boundary != Periodic {
		return x
	}
	return cyclicShift(x, t.wavelet.GroupDelay)
}

// cyclicShift returns a copy of x rotated left by k positions:
// out[i] = x[(i+k) mod n].
func cyclicShift(x []float64, k int) []float64 {
	n := len(x)
	if n == 0 {
		return x
	}
	k = ((k % n) + n) % n
	if k == 0 {
		return cloneSlice(x)
	}
	out := make([]float64, n)
	copy(out[:n-k], x[k:])
	copy(out[n-k:], x[:k])
	return out
}
