package kernel

import "github.com/cwbudde/algo-vecmath"

// vectorConvolve evaluates the same equation as scalarConvolve, but
// restructured per filter tap: for a fixed tap k, contributing
// f[k]*x[(t±k)] into every output index t is a single shifted,
// scaled, accumulated pass over the whole signal — exactly the
// per-tap scale-and-accumulate strategy dsp/conv.go's directToSIMD
// uses for linear convolution, generalized to circular/zero-padded
// indexing so algo-vecmath's AVX2-dispatched ScaleBlock/AddBlockInPlace
// can carry the O(N) inner work for every tap.
func vectorConvolve(dst, x, f []float64, b Boundary, dir Direction) {
	n := len(x)
	for i := range dst {
		dst[i] = 0
	}

	shifted := make([]float64, n)
	scaled := make([]float64, n)

	for k, coeff := range f {
		shiftTap(shifted, x, k, b, dir)
		vecmath.ScaleBlock(scaled, shifted, coeff)
		vecmath.AddBlockInPlace(dst, scaled)
	}
}

// shiftTap fills dst[t] = x[(t + sign*k) mod/clamped N] for the tap
// offset k, where sign is -1 for Forward (analysis) and +1 for Inverse
// (synthesis), per the boundary policy b.
func shiftTap(dst, x []float64, k int, b Boundary, dir Direction) {
	n := len(x)
	if n == 0 {
		return
	}
	kk := k % n

	if dir == Forward {
		if b == Periodic {
			rotateRight(dst, x, kk)
		} else {
			shiftRightZero(dst, x, k)
		}
		return
	}

	if b == Periodic {
		rotateLeft(dst, x, kk)
	} else {
		shiftLeftZero(dst, x, k)
	}
}

// rotateRight sets dst[t] = x[(t-k) mod n], 0 <= k < n.
func rotateRight(dst, x []float64, k int) {
	n := len(x)
	if k == 0 {
		copy(dst, x)
		return
	}
	copy(dst[:k], x[n-k:])
	copy(dst[k:], x[:n-k])
}

// rotateLeft sets dst[t] = x[(t+k) mod n], 0 <= k < n.
func rotateLeft(dst, x []float64, k int) {
	n := len(x)
	if k == 0 {
		copy(dst, x)
		return
	}
	copy(dst[:n-k], x[k:])
	copy(dst[n-k:], x[:k])
}

// shiftRightZero sets dst[t] = x[t-k] for t>=k, else 0 (k may exceed n).
func shiftRightZero(dst, x []float64, k int) {
	n := len(x)
	if k >= n {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	for i := 0; i < k; i++ {
		dst[i] = 0
	}
	copy(dst[k:], x[:n-k])
}

// shiftLeftZero sets dst[t] = x[t+k] for t < n-k, else 0 (k may exceed n).
func shiftLeftZero(dst, x []float64, k int) {
	n := len(x)
	if k >= n {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	copy(dst[:n-k], x[k:])
	for i := n - k; i < n; i++ {
		dst[i] = 0
	}
}
