package wavelet

import (
	"fmt"
	"math"
	"sort"
)

// Errors returned by catalog lookups.
var (
	// ErrUnknownWavelet is returned by Lookup for a name not present in
	// the catalog.
	ErrUnknownWavelet = fmt.Errorf("wavelet: unknown wavelet")
)

// Names of catalog entries. These are the stable identifiers accepted by
// Lookup and returned by the enumeration functions.
const (
	Haar   = "haar"
	DB2    = "db2"
	DB4    = "db4"
	Bior13 = "bior1.3"

	Morlet     = "morlet"
	MexicanHat = "mexican-hat"
)

var catalog map[string]Wavelet

func init() {
	catalog = make(map[string]Wavelet)

	registerOrthogonal(Haar, haarH0())
	registerOrthogonal(DB2, db2H0())
	registerOrthogonal(DB4, db4H0())
	registerBiorthogonal(bior13())
	registerContinuous(Morlet)
	registerContinuous(MexicanHat)
}

// registerOrthogonal builds the full filter bank for an orthogonal
// wavelet from its scaling filter h0 alone: h1 is derived via the
// quadrature-mirror relation, and g0/g1 equal h0/h1 by the orthogonal
// convention (spec.md's Data Model, Wavelet invariants).
func registerOrthogonal(name string, h0 []float64) {
	h1 := qmf(h0)
	catalog[name] = Wavelet{
		Name: name,
		Kind: Orthogonal,
		H0:   h0,
		H1:   h1,
		G0:   clone(h0),
		G1:   clone(h1),
	}
}

func registerBiorthogonal(w Wavelet) {
	w.Kind = Biorthogonal
	catalog[w.Name] = w
}

func registerContinuous(name string) {
	catalog[name] = Wavelet{Name: name, Kind: Continuous}
}

// haarH0 returns the Haar scaling filter: the trivial orthonormal
// 2-tap average.
func haarH0() []float64 {
	v := 1 / math.Sqrt2
	return []float64{v, v}
}

// db2H0 returns the Daubechies-2 (4-tap) scaling filter in closed form.
// Computing from sqrt(3) rather than hardcoding rounded decimals keeps
// the filter exactly orthonormal to machine precision.
func db2H0() []float64 {
	s3 := math.Sqrt(3)
	d := 4 * math.Sqrt2
	return []float64{
		(1 + s3) / d,
		(3 + s3) / d,
		(3 - s3) / d,
		(1 - s3) / d,
	}
}

// db4H0 returns the canonical Daubechies-4 (8-tap) scaling filter.
func db4H0() []float64 {
	return []float64{
		-0.010597401785069032,
		0.0328830116668852,
		0.030841381835560764,
		-0.18703481171909309,
		-0.02798376941698385,
		0.6308807679398587,
		0.7148465705529157,
		0.23037781330885523,
	}
}

// bior13 returns the CDF biorthogonal spline wavelet bior1.3: a short
// (Haar-like) synthesis pair and a longer 6-tap analysis pair. Both
// H0 and G0 sum to sqrt(2), and H1 sums to 0 (high-pass admissibility),
// so sum(H0)*sum(G0) == 2, satisfying the condition the inverse MODWT
// identity needs for exact reconstruction of constant signals.
func bior13() Wavelet {
	c := 1 / math.Sqrt2
	a := 0.08838834764831845

	h0 := []float64{-a, a, c, c, a, -a}
	h1 := []float64{0, 0, -c, c, 0, 0}
	g0 := []float64{0, 0, c, c, 0, 0}
	g1 := []float64{a, a, c, -c, -a, -a}

	return Wavelet{
		Name:       Bior13,
		H0:         h0,
		H1:         h1,
		G0:         g0,
		G1:         g1,
		GroupDelay: 2,
	}
}

// Lookup returns the catalog entry for name, or ErrUnknownWavelet.
func Lookup(name string) (Wavelet, error) {
	w, ok := catalog[name]
	if !ok {
		return Wavelet{}, fmt.Errorf("%w: %q", ErrUnknownWavelet, name)
	}
	return w, nil
}

// OrthogonalWavelets returns the stable, alphabetically ordered list of
// orthogonal wavelet names in the catalog.
func OrthogonalWavelets() []string { return namesOfKind(Orthogonal) }

// BiorthogonalWavelets returns the stable, alphabetically ordered list of
// biorthogonal wavelet names in the catalog.
func BiorthogonalWavelets() []string { return namesOfKind(Biorthogonal) }

// ContinuousWavelets returns the stable, alphabetically ordered list of
// continuous (MODWT non-participant) wavelet names in the catalog.
func ContinuousWavelets() []string { return namesOfKind(Continuous) }

func namesOfKind(k Kind) []string {
	var names []string
	for name, w := range catalog {
		if w.Kind == k {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
