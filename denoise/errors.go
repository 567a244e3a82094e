package denoise

import "errors"

// Errors returned by the denoiser. All are sentinel values usable with
// errors.Is; the multi-level transform's own validation errors
// (modwt.ErrInvalidLevels, modwt.ErrInvalidSignalLength) surface
// unwrapped from ForwardMultiLevel where applicable.
var (
	// ErrInvalidThresholdMethod is returned for a Method other than
	// Universal, SURE, or Minimax.
	ErrInvalidThresholdMethod = errors.New("denoise: invalid threshold method")

	// ErrInvalidThresholdType is returned for a Type other than Soft or
	// Hard.
	ErrInvalidThresholdType = errors.New("denoise: invalid threshold type")

	// ErrInvalidWindowSize is returned when a streaming noise estimator
	// is constructed with a non-positive ring buffer window.
	ErrInvalidWindowSize = errors.New("denoise: noise window size must be positive")
)
