package modwt

import "github.com/prophetizo/vectorwave-go/internal/pool"

// Config collects the tunable behavior of a Transform, assembled via
// functional options — the same pattern the teacher's biquad.Section
// and dither.Ditherer constructors use for their configuration structs.
type Config struct {
	boundary    BoundaryMode
	simdEnabled bool
	pool        *pool.Pool
}

func defaultConfig() Config {
	_, simd := detectSIMD()
	return Config{
		boundary:    Periodic,
		simdEnabled: simd,
	}
}

// Option configures a Transform at construction time.
type Option func(*Config)

// WithBoundary selects the boundary policy used by every Forward/Inverse
// call on the resulting Transform. Defaults to Periodic.
func WithBoundary(mode BoundaryMode) Option {
	return func(c *Config) { c.boundary = mode }
}

// WithSIMD enables or disables vector/specialized kernel dispatch,
// forcing scalar kernels when false regardless of signal size. Defaults
// to the platform's detected vector support (SSE2 or NEON); set false to
// get reproducible reference-kernel behavior for testing.
func WithSIMD(enabled bool) Option {
	return func(c *Config) { c.simdEnabled = enabled }
}

// WithPool attaches a size-keyed buffer pool (spec.md §4.7) that Inverse
// and InverseMultiLevel draw their transient reconstruction scratch
// buffers from instead of allocating fresh ones on every call. Per
// spec.md §4.7, a Transform built without WithPool functions identically,
// just without the reuse: the pool is an optional hot-path accelerator,
// never a correctness dependency.
func WithPool(p *pool.Pool) Option {
	return func(c *Config) { c.pool = p }
}
