package modwt

import (
	"math"
	"sync"

	"github.com/prophetizo/vectorwave-go/wavelet"
)

// scaledPair holds a MODWT-scaled low-pass/high-pass filter pair at a
// given level: level-1 is h/√2 (or g/√2); level j>1 is additionally
// upsampled by inserting 2^(j-1)-1 zeros between taps. MODWT filters
// (unlike DWT's) are not orthonormal; the 1/√2 scaling keeps wavelet
// variance decomposition additive across levels.
type scaledPair struct {
	h0 []float64
	h1 []float64
}

func scaleFilters(h0, h1 []float64) scaledPair {
	const inv = 1 / math.Sqrt2
	return scaledPair{
		h0: scaleSlice(h0, inv),
		h1: scaleSlice(h1, inv),
	}
}

func scaleSlice(f []float64, s float64) []float64 {
	out := make([]float64, len(f))
	for i, v := range f {
		out[i] = v * s
	}
	return out
}

// upsample builds the level-j filter from a level-1 MODWT-scaled filter
// by inserting 2^(j-1)-1 zeros between taps (the "algorithme à trous").
// No further rescaling is applied: the pyramid filters the level-(j-1)
// approximation, not the original signal, so the level-1 1/√2 factor
// applied at every level already yields the 2^(-j/2) overall scaling.
// Level 1 is the identity (zero insertion of 0 zeros).
func upsample(f []float64, level int) []float64 {
	if level <= 1 {
		return cloneSlice(f)
	}
	gap := 1 << uint(level-1) // 2^(j-1)

	out := make([]float64, (len(f)-1)*gap+1)
	for k, v := range f {
		out[k*gap] = v
	}
	return out
}

// filterSet caches the upsampled analysis (h0/h1) and synthesis (g0/g1)
// filter pairs for one wavelet across decomposition levels. Guarded by
// sync.RWMutex for single-writer, many-readers access — the same locking
// discipline the teacher's internal/vecmath/registry.OpRegistry uses to
// protect its op table, generalized here to a memoizing cache.
type filterSet struct {
	analysisBase  scaledPair
	synthesisBase scaledPair

	mu         sync.RWMutex
	analysis   map[int]scaledPair
	synthesis  map[int]scaledPair
}

func newFilterSet(w wavelet.Wavelet) *filterSet {
	return &filterSet{
		analysisBase:  scaleFilters(w.H0, w.H1),
		synthesisBase: scaleFilters(w.G0, w.G1),
		analysis:      make(map[int]scaledPair),
		synthesis:     make(map[int]scaledPair),
	}
}

func (fs *filterSet) getAnalysis(level int) scaledPair {
	return fs.get(level, fs.analysisBase, fs.analysis)
}

func (fs *filterSet) getSynthesis(level int) scaledPair {
	return fs.get(level, fs.synthesisBase, fs.synthesis)
}

func (fs *filterSet) get(level int, base scaledPair, cache map[int]scaledPair) scaledPair {
	if level <= 1 {
		return base
	}

	fs.mu.RLock()
	p, ok := cache[level]
	fs.mu.RUnlock()
	if ok {
		return p
	}

	p = scaledPair{
		h0: upsample(base.h0, level),
		h1: upsample(base.h1, level),
	}

	fs.mu.Lock()
	cache[level] = p
	fs.mu.Unlock()
	return p
}
