package modwt

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/prophetizo/vectorwave-go/modwt/internal/kernel"
)

// PerformanceInfo is a diagnostic snapshot of the platform capability a
// Transform will dispatch kernels against, and (once a transform has run)
// which kernel variant actually ran. It answers "what ran," the same role
// the teacher's cpu.Features/biquad registry Lookup plays for biquad
// section processing — it is not configuration, it cannot be set.
type PerformanceInfo struct {
	Architecture string
	SIMDEnabled  bool
	LastKernel   string
}

func (p PerformanceInfo) String() string {
	return fmt.Sprintf("arch=%s simd=%v kernel=%s", p.Architecture, p.SIMDEnabled, p.LastKernel)
}

// detectSIMD reports whether this platform has any usable vector
// instruction set; its result is the default for WithSIMD.
func detectSIMD() (archName string, enabled bool) {
	f := cpu.DetectFeatures()
	enabled = cpu.Supports(f, cpu.SIMDSSE2) || cpu.Supports(f, cpu.SIMDNEON)
	return f.Architecture, enabled
}

func performanceInfoFromKernel(k kernel.Kind) PerformanceInfo {
	arch, enabled := detectSIMD()
	return PerformanceInfo{
		Architecture: arch,
		SIMDEnabled:  enabled,
		LastKernel:   k.String(),
	}
}
