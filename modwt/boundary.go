package modwt

import "github.com/prophetizo/vectorwave-go/modwt/internal/kernel"

// BoundaryMode selects the index policy the convolution kernels use
// beyond a signal's edges.
type BoundaryMode int

const (
	// Periodic wraps indices modulo N (circular convolution). Orthogonal
	// wavelets under Periodic boundaries satisfy perfect reconstruction
	// (P1).
	Periodic BoundaryMode = iota

	// ZeroPadding treats out-of-range reads as zero. Edge artifacts are
	// expected; reconstruction is not guaranteed exact.
	ZeroPadding
)

func (m BoundaryMode) String() string {
	switch m {
	case Periodic:
		return "periodic"
	case ZeroPadding:
		return "zero-padding"
	default:
		return "unknown"
	}
}

func (m BoundaryMode) valid() bool {
	return m == Periodic || m == ZeroPadding
}

func (m BoundaryMode) toKernel() kernel.Boundary {
	if m == ZeroPadding {
		return kernel.ZeroPadding
	}
	return kernel.Periodic
}
