package modwt

import "errors"

// Errors returned by the MODWT transform entry points. All are sentinel
// values usable with errors.Is; functions wrap them with additional
// context via fmt.Errorf("%w: ...").
var (
	// ErrContinuousWavelet is returned when a Continuous-kind wavelet is
	// passed to a MODWT entry point; continuous wavelets have no discrete
	// filter bank and are non-participants in MODWT.
	ErrContinuousWavelet = errors.New("modwt: continuous wavelets are not supported")

	// ErrInvalidBoundaryMode is returned for a BoundaryMode other than
	// Periodic or ZeroPadding.
	ErrInvalidBoundaryMode = errors.New("modwt: invalid boundary mode")

	// ErrInvalidSignalLength is returned when a signal is shorter than
	// the wavelet's filter length (N < L).
	ErrInvalidSignalLength = errors.New("modwt: signal length must be >= filter length")

	// ErrShapeMismatch is returned when approx/detail coefficient slices
	// do not share the same length, or an inverse input disagrees with
	// the signal length it was constructed against.
	ErrShapeMismatch = errors.New("modwt: approx/detail length mismatch")

	// ErrInvalidLevels is returned when the requested decomposition depth
	// J is outside [1, Jmax(N, L)].
	ErrInvalidLevels = errors.New("modwt: invalid decomposition level")

	// ErrSignalLengthMismatch is returned by the batch processor when
	// input signals do not all share the same length.
	ErrSignalLengthMismatch = errors.New("modwt: batch signals must share a common length")

	// ErrEmptyBatch is returned when ForwardBatch is called with zero
	// signals.
	ErrEmptyBatch = errors.New("modwt: batch must contain at least one signal")
)
