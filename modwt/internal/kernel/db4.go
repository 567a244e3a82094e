package kernel

// db4Convolve is the unrolled 8-tap specialization of scalarConvolve,
// used when the filter length is exactly 8 (the Daubechies-4 scaling
// and wavelet filter length). It must agree with scalarConvolve/
// vectorConvolve to within IEEE-754 commutation tolerance (P4).
func db4Convolve(dst, x, f []float64, b Boundary, dir Direction) {
	n := len(x)
	f0, f1, f2, f3 := f[0], f[1], f[2], f[3]
	f4, f5, f6, f7 := f[4], f[5], f[6], f[7]
	sign := -1
	if dir == Inverse {
		sign = 1
	}

	for t := 0; t < n; t++ {
		dst[t] = f0*readAt(x, t, b) +
			f1*readAt(x, t+sign, b) +
			f2*readAt(x, t+2*sign, b) +
			f3*readAt(x, t+3*sign, b) +
			f4*readAt(x, t+4*sign, b) +
			f5*readAt(x, t+5*sign, b) +
			f6*readAt(x, t+6*sign, b) +
			f7*readAt(x, t+7*sign, b)
	}
}
