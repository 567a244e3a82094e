package kernel

import "github.com/cwbudde/algo-vecmath"

// BatchSoA computes bCount independent MODWT convolutions of length n,
// laid out in structure-of-arrays form: element (signal, t) lives at
// linear index t*bCount+signal in both x and dst. For each output row t
// and filter tap k, the B-wide row x[srcRow*bCount : srcRow*bCount+bCount]
// is scaled by f[k] and accumulated into dst[t*bCount : t*bCount+bCount]
// — broadcasting one filter tap across all B lanes per spec.md's batch
// kernel contract, the SoA generalization of vectorConvolve's per-tap
// scale-and-accumulate strategy.
func BatchSoA(dst, x, f []float64, bCount, n int, b Boundary, dir Direction) {
	if len(x) != bCount*n || len(dst) != bCount*n {
		panic("kernel: SoA buffer size mismatch")
	}

	for i := range dst {
		dst[i] = 0
	}

	scratch := make([]float64, bCount)
	sign := -1
	if dir == Inverse {
		sign = 1
	}

	for t := 0; t < n; t++ {
		outRow := dst[t*bCount : t*bCount+bCount]
		for k, coeff := range f {
			srcRow, ok := index(t+sign*k, n, b)
			if !ok {
				continue
			}
			row := x[srcRow*bCount : srcRow*bCount+bCount]
			vecmath.ScaleBlock(scratch, row, coeff)
			vecmath.AddBlockInPlace(outRow, scratch)
		}
	}
}

// SequentialFallback runs BatchSoA-equivalent semantics via bCount
// independent calls into Convolve, used when the batch shape (B<4 or
// N<64) would not amortize the SoA broadcast over sequential execution
// (spec.md §4.4).
func SequentialFallback(dstRows, xRows [][]float64, f []float64, b Boundary, dir Direction, simdEnabled bool) {
	for i := range xRows {
		Convolve(dstRows[i], xRows[i], f, b, dir, simdEnabled)
	}
}
