// Package wavelet provides the immutable wavelet filter-bank catalog used
// by the MODWT subsystem. A Wavelet is a data-only record; all transform
// behavior lives in the modwt package, keyed off a Wavelet's Kind and
// filter taps.
package wavelet

// Kind classifies a Wavelet's filter-bank structure.
type Kind int

const (
	// Orthogonal wavelets have reconstruction filters equal to their
	// decomposition filters (G0 == H0, G1 == H1).
	Orthogonal Kind = iota

	// Biorthogonal wavelets have independent decomposition and
	// reconstruction filter pairs.
	Biorthogonal

	// Continuous wavelets carry no discrete filter bank and are rejected
	// by every MODWT entry point.
	Continuous
)

// String returns a human-readable name for k.
func (k Kind) String() string {
	switch k {
	case Orthogonal:
		return "orthogonal"
	case Biorthogonal:
		return "biorthogonal"
	case Continuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// Wavelet is an immutable filter-bank record.
//
// H0, H1 are the decomposition (analysis) low- and high-pass filters. G0,
// G1 are the reconstruction (synthesis) low- and high-pass filters. For
// Orthogonal wavelets G0 == H0 and G1 == H1. Continuous wavelets carry no
// filters at all (all four slices are nil).
//
// GroupDelay is the number of samples a Periodic-mode MODWT
// reconstruction must be cyclically shifted by to compensate for a
// Biorthogonal wavelet's linear-phase asymmetry. It is always 0 for
// Orthogonal wavelets.
type Wavelet struct {
	Name       string
	Kind       Kind
	H0         []float64
	H1         []float64
	G0         []float64
	G1         []float64
	GroupDelay int
}

// FilterLength returns the length L of the decomposition filters, the
// quantity spec'd as L throughout the MODWT subsystem (Jmax, minimum
// signal length, etc). Continuous wavelets return 0.
func (w Wavelet) FilterLength() int {
	return len(w.H0)
}

// qmf derives the high-pass wavelet filter from an orthonormal low-pass
// scaling filter via the quadrature-mirror relation
//
//	h1[l] = (-1)^l * h0[L-1-l]
//
// Any exact orthonormal scaling filter (sum(h0) == sqrt(2), unit energy,
// orthogonal to its even shifts) produces, via this relation, a filter
// pair satisfying the MODWT perfect-reconstruction identity — the
// derivation itself introduces no numerical error beyond that already
// present in h0.
func qmf(h0 []float64) []float64 {
	l := len(h0)
	h1 := make([]float64, l)
	for i := range h1 {
		sign := 1.0
		if i%2 != 0 {
			sign = -1
		}
		h1[i] = sign * h0[l-1-i]
	}
	return h1
}

func clone(f []float64) []float64 {
	if f == nil {
		return nil
	}
	out := make([]float64, len(f))
	copy(out, f)
	return out
}
