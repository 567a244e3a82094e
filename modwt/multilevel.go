package modwt

import (
	"fmt"

	"github.com/prophetizo/vectorwave-go/modwt/internal/kernel"
)

// ForwardMultiLevel computes a J-level MODWT pyramid decomposition of x:
// at each level j, the previous level's approximation is filtered with the
// level-j upsampled analysis filter pair, producing detail_j and the next
// approximation. Returns ErrInvalidLevels if levels is outside
// [1, Jmax(N)].
func (t *Transform) ForwardMultiLevel(x []float64, levels int) (MultiLevelResult, error) {
	n := len(x)
	l := t.wavelet.FilterLength()
	if n < l {
		return MultiLevelResult{}, fmt.Errorf("%w: N=%d L=%d", ErrInvalidSignalLength, n, l)
	}
	if jm := jmax(n, l); levels < 1 || levels > jm {
		return MultiLevelResult{}, fmt.Errorf("%w: levels=%d Jmax=%d", ErrInvalidLevels, levels, jm)
	}

	details := make([][]float64, levels)
	approx := cloneSlice(x)

	var kind kernel.Kind
	for j := 1; j <= levels; j++ {
		pair := t.filters.getAnalysis(j)
		nextApprox := make([]float64, n)
		detail := make([]float64, n)

		kind = kernel.Convolve(nextApprox, approx, pair.h0, t.cfg.boundary.toKernel(), kernel.Forward, t.cfg.simdEnabled)
		_ = kernel.Convolve(detail, approx, pair.h1, t.cfg.boundary.toKernel(), kernel.Forward, t.cfg.simdEnabled)

		details[j-1] = detail
		approx = nextApprox
	}
	t.lastKernel = kind

	return MultiLevelResult{details: details, approx: approx, levels: levels}, nil
}

// InverseMultiLevel reconstructs a signal from a J-level MODWT pyramid:
// starting from the level-J approximation, each level j (from J down to 1)
// combines the current approximation with detail_j via the level-j
// synthesis filter pair to produce the level-(j-1) approximation. The
// level-0 approximation is the reconstructed signal, group-delay
// compensated once at the end for biorthogonal wavelets under Periodic
// boundaries.
func (t *Transform) InverseMultiLevel(r MultiLevelResult) ([]float64, error) {
	n := r.N()
	approx := cloneSlice(r.approx)

	var kind kernel.Kind
	for j := r.levels; j >= 1; j-- {
		pair := t.filters.getSynthesis(j)
		detail := r.details[j-1]

		fromApprox := t.scratch(n)
		fromDetail := t.scratch(n)
		kind = kernel.Convolve(fromApprox, approx, pair.h0, t.cfg.boundary.toKernel(), kernel.Inverse, t.cfg.simdEnabled)
		_ = kernel.Convolve(fromDetail, detail, pair.h1, t.cfg.boundary.toKernel(), kernel.Inverse, t.cfg.simdEnabled)

		next := make([]float64, n)
		for i := range next {
			next[i] = fromApprox[i] + fromDetail[i]
		}
		t.release(fromApprox)
		t.release(fromDetail)
		approx = next
	}
	t.lastKernel = kind

	return t.compensateGroupDelay(approx), nil
}
