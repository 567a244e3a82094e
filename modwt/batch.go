package modwt

import (
	"fmt"

	"github.com/prophetizo/vectorwave-go/modwt/internal/kernel"
)

// batchMinSignals and batchMinLength are the minimum (B, N) shape at which the SoA batch
// kernel amortizes its broadcast setup cost over per-signal sequential
// convolution, per spec.md §4.4's batch kernel selection policy.
const (
	batchMinSignals = 4
	batchMinLength  = 64
)

// BatchResult is the single-level forward outcome for a batch of signals
// sharing one length N, stored SoA: element (signal b, time t) lives at
// linear index t*B+b in both approx and detail; Signal extracts one
// signal's coefficients.
type BatchResult struct {
	approx []float64
	detail []float64
	b      int
	n      int
}

// B returns the batch size.
func (r BatchResult) B() int { return r.b }

// N returns the common signal length.
func (r BatchResult) N() int { return r.n }

// Signal extracts signal index i's approximation and detail coefficients
// from SoA storage into freshly allocated AoS slices.
func (r BatchResult) Signal(i int) (approx, detail []float64) {
	approx = make([]float64, r.n)
	detail = make([]float64, r.n)
	for t := 0; t < r.n; t++ {
		approx[t] = r.approx[t*r.b+i]
		detail[t] = r.detail[t*r.b+i]
	}
	return approx, detail
}

// ForwardBatch computes the single-level MODWT forward transform of B
// signals that share a common length N. Returns ErrEmptyBatch if signals
// is empty, or ErrSignalLengthMismatch if they do not share a length.
func (t *Transform) ForwardBatch(signals [][]float64) (BatchResult, error) {
	b := len(signals)
	if b == 0 {
		return BatchResult{}, ErrEmptyBatch
	}
	n := len(signals[0])
	for _, s := range signals {
		if len(s) != n {
			return BatchResult{}, ErrSignalLengthMismatch
		}
	}
	l := t.wavelet.FilterLength()
	if n < l {
		return BatchResult{}, fmt.Errorf("%w: N=%d L=%d", ErrInvalidSignalLength, n, l)
	}

	pair := t.filters.getAnalysis(1)
	approx := make([]float64, b*n)
	detail := make([]float64, b*n)

	if b >= batchMinSignals && n >= batchMinLength {
		soa := toSoA(signals, b, n)
		kernel.BatchSoA(approx, soa, pair.h0, b, n, t.cfg.boundary.toKernel(), kernel.Forward)
		kernel.BatchSoA(detail, soa, pair.h1, b, n, t.cfg.boundary.toKernel(), kernel.Forward)
		t.lastKernel = kernel.KindVector
	} else {
		approxRows := make([][]float64, b)
		detailRows := make([][]float64, b)
		for i := range signals {
			approxRows[i] = make([]float64, n)
			detailRows[i] = make([]float64, n)
		}
		kernel.SequentialFallback(approxRows, signals, pair.h0, t.cfg.boundary.toKernel(), kernel.Forward, t.cfg.simdEnabled)
		kernel.SequentialFallback(detailRows, signals, pair.h1, t.cfg.boundary.toKernel(), kernel.Forward, t.cfg.simdEnabled)
		fromAoS(approx, approxRows, b, n)
		fromAoS(detail, detailRows, b, n)
	}

	return BatchResult{approx: approx, detail: detail, b: b, n: n}, nil
}

// InverseBatch reconstructs B signals of length N from a BatchResult.
func (t *Transform) InverseBatch(r BatchResult) ([][]float64, error) {
	pair := t.filters.getSynthesis(1)
	fromApprox := make([]float64, r.b*r.n)
	fromDetail := make([]float64, r.b*r.n)

	if r.b >= batchMinSignals && r.n >= batchMinLength {
		kernel.BatchSoA(fromApprox, r.approx, pair.h0, r.b, r.n, t.cfg.boundary.toKernel(), kernel.Inverse)
		kernel.BatchSoA(fromDetail, r.detail, pair.h1, r.b, r.n, t.cfg.boundary.toKernel(), kernel.Inverse)
		t.lastKernel = kernel.KindVector
	} else {
		approxRows := toAoS(r.approx, r.b, r.n)
		detailRows := toAoS(r.detail, r.b, r.n)
		outA := make([][]float64, r.b)
		outD := make([][]float64, r.b)
		for i := 0; i < r.b; i++ {
			outA[i] = make([]float64, r.n)
			outD[i] = make([]float64, r.n)
		}
		kernel.SequentialFallback(outA, approxRows, pair.h0, t.cfg.boundary.toKernel(), kernel.Inverse, t.cfg.simdEnabled)
		kernel.SequentialFallback(outD, detailRows, pair.h1, t.cfg.boundary.toKernel(), kernel.Inverse, t.cfg.simdEnabled)
		fromAoS(fromApprox, outA, r.b, r.n)
		fromAoS(fromDetail, outD, r.b, r.n)
	}

	out := make([][]float64, r.b)
	for i := 0; i < r.b; i++ {
		out[i] = make([]float64, r.n)
	}
	for pos := 0; pos < r.n; pos++ {
		for i := 0; i < r.b; i++ {
			out[i][pos] = fromApprox[pos*r.b+i] + fromDetail[pos*r.b+i]
		}
	}
	for i := range out {
		out[i] = t.compensateGroupDelay(out[i])
	}
	return out, nil
}

func toSoA(signals [][]float64, b, n int) []float64 {
	out := make([]float64, b*n)
	for i, s := range signals {
		for t := 0; t < n; t++ {
			out[t*b+i] = s[t]
		}
	}
	return out
}

func toAoS(soa []float64, b, n int) [][]float64 {
	rows := make([][]float64, b)
	for i := 0; i < b; i++ {
		rows[i] = make([]float64, n)
		for t := 0; t < n; t++ {
			rows[i][t] = soa[t*b+i]
		}
	}
	return rows
}

func fromAoS(soa []float64, rows [][]float64, b, n int) {
	for i, row := range rows {
		for t := 0; t < n; t++ {
			soa[t*b+i] = row[t]
		}
	}
}
