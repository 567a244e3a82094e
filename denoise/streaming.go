package denoise

import "github.com/prophetizo/vectorwave-go/modwt"

// StreamingDenoiser applies the same multi-level threshold algorithm as
// Denoiser per fixed-size block, but estimates noise online from a
// ring buffer of the most recent detail samples instead of recomputing
// from a static signal.
type StreamingDenoiser struct {
	tr        *modwt.Transform
	cfg       Config
	levels    int
	estimator *NoiseEstimator

	samplesProcessed uint64
}

// NewStreaming constructs a StreamingDenoiser for the named wavelet and
// boundary mode, decomposing each block to `levels` levels and
// estimating noise with the given EstimationMethod over a ring buffer of
// windowSize detail samples.
func NewStreaming(waveletName string, boundary modwt.BoundaryMode, levels int, estMethod EstimationMethod, windowSize int, opts ...Option) (*StreamingDenoiser, error) {
	tr, err := modwt.New(waveletName, modwt.WithBoundary(boundary))
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.method.valid() {
		return nil, ErrInvalidThresholdMethod
	}
	if !cfg.typ.valid() {
		return nil, ErrInvalidThresholdType
	}

	estimator, err := NewNoiseEstimator(estMethod, windowSize)
	if err != nil {
		return nil, err
	}

	return &StreamingDenoiser{tr: tr, cfg: cfg, levels: levels, estimator: estimator}, nil
}

// ProcessBlock denoises one block of samples: multi-level forward,
// online noise estimate update from level-1 detail, per-level
// threshold and shrinkage, multi-level inverse.
func (sd *StreamingDenoiser) ProcessBlock(block []float64) ([]float64, error) {
	result, err := sd.tr.ForwardMultiLevel(block, sd.levels)
	if err != nil {
		return nil, err
	}

	sigma := sd.estimator.Update(result.Detail(1))

	mutable := result.Mutable()
	for j := 1; j <= sd.levels; j++ {
		d := mutable.Detail(j)
		tau := threshold(sd.cfg.method, sigma, d)
		shrunk := applyThreshold(d, tau, sd.cfg.typ)
		copy(mutable.Detail(j), shrunk)
	}

	out, err := sd.tr.InverseMultiLevel(mutable.Freeze())
	if err != nil {
		return nil, err
	}
	sd.samplesProcessed += uint64(len(block))
	return out, nil
}

// CurrentNoiseLevel returns the most recent online σ̂ estimate.
func (sd *StreamingDenoiser) CurrentNoiseLevel() float64 {
	return sd.estimator.Sigma()
}

// SamplesProcessed returns the cumulative count of samples denoised so
// far.
func (sd *StreamingDenoiser) SamplesProcessed() uint64 {
	return sd.samplesProcessed
}
