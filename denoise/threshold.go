package denoise

import (
	"math"
	"sort"
)

// Method selects the rule used to choose the shrinkage threshold τ for
// a level's detail coefficients.
type Method int

const (
	// Universal: τ = σ̂ * sqrt(2 ln N) (Donoho-Johnstone universal rule).
	Universal Method = iota
	// SURE: τ minimizes Stein's Unbiased Risk Estimate over the
	// coefficient magnitudes present at this level (closed form).
	SURE
	// Minimax: τ = σ̂ * minimax(N), the Donoho-Johnstone minimax-risk
	// approximation, linear in log2(N).
	Minimax
)

func (m Method) valid() bool {
	return m == Universal || m == SURE || m == Minimax
}

// Type selects the nonlinearity applied once τ is chosen.
type Type int

const (
	// Soft: sign(d) * max(|d| - τ, 0).
	Soft Type = iota
	// Hard: d if |d| > τ, else 0.
	Hard
)

func (t Type) valid() bool {
	return t == Soft || t == Hard
}

// threshold computes τ for one level's detail coefficients d (length N)
// given noise estimate sigma, using method m.
func threshold(m Method, sigma float64, d []float64) float64 {
	n := len(d)
	switch m {
	case Universal:
		return sigma * math.Sqrt(2*math.Log(float64(n)))
	case Minimax:
		return sigma * minimaxMultiplier(n)
	case SURE:
		return sureThreshold(d)
	default:
		return 0
	}
}

// minimaxMultiplier is the Donoho-Johnstone closed-form approximation to
// the minimax-risk threshold multiplier, linear in log2(N): the
// "published lookup table" spec.md references is this formula in
// practice (the literal per-N table this approximates is not stable
// across sources; the closed form is the stable contract). For N <= 32
// the minimax threshold is conventionally zero (no level is denoised).
func minimaxMultiplier(n int) float64 {
	if n <= 32 {
		return 0
	}
	return 0.3936 + 0.1829*math.Log2(float64(n))
}

// sureThreshold picks τ minimizing
//
//	SURE(τ) = N - 2·#{|d[i]| <= τ} + Σ min(d[i]², τ²)
//
// over the candidate set {|d[i]|}, which is sufficient since the risk
// function is piecewise linear in τ² between consecutive |d[i]| values
// and attains its minimum at one of them (or at τ=0).
func sureThreshold(d []float64) float64 {
	n := len(d)
	if n == 0 {
		return 0
	}
	abs := make([]float64, n)
	for i, v := range d {
		abs[i] = math.Abs(v)
	}
	sort.Float64s(abs)

	sq := make([]float64, n+1) // sq[i] = sum of abs[0:i]^2
	for i, v := range abs {
		sq[i+1] = sq[i] + v*v
	}

	// Start from τ=0, whose risk is N when no coefficient is exactly
	// zero (zeros are covered by the candidate loop below).
	bestRisk := float64(n)
	bestTau := 0.0
	for i, tau := range abs {
		countLE := i + 1
		sumMin := sq[i+1] + float64(n-i-1)*tau*tau
		risk := float64(n) - 2*float64(countLE) + sumMin
		if risk < bestRisk {
			bestRisk = risk
			bestTau = tau
		}
	}
	return bestTau
}

// applyThreshold returns a new slice with the thresholding nonlinearity
// t applied to d using shrinkage parameter tau.
func applyThreshold(d []float64, tau float64, t Type) []float64 {
	out := make([]float64, len(d))
	for i, v := range d {
		switch t {
		case Soft:
			mag := math.Abs(v) - tau
			if mag < 0 {
				mag = 0
			}
			out[i] = math.Copysign(mag, v)
		case Hard:
			if math.Abs(v) > tau {
				out[i] = v
			}
		}
	}
	return out
}
