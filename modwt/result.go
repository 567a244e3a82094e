package modwt

// Result is the immutable outcome of a single-level MODWT forward
// transform: approximation (low-pass) and detail (high-pass)
// coefficients, both length N. Accessors return defensive copies so
// callers can never observe mutation of internal storage.
type Result struct {
	approx []float64
	detail []float64
}

// newResult takes ownership of approx/detail without copying; callers
// must not retain references to the slices passed in.
func newResult(approx, detail []float64) Result {
	return Result{approx: approx, detail: detail}
}

// N returns the signal length the coefficients were computed at.
func (r Result) N() int { return len(r.approx) }

// Approx returns a copy of the approximation coefficients.
func (r Result) Approx() []float64 { return cloneSlice(r.approx) }

// Detail returns a copy of the detail coefficients.
func (r Result) Detail() []float64 { return cloneSlice(r.detail) }

// MultiLevelResult is the immutable outcome of a J-level MODWT forward
// decomposition: one detail sequence per level 1..J, plus the final-level
// approximation. All sequences have length N.
type MultiLevelResult struct {
	details [][]float64 // details[j-1] is level j's detail coefficients
	approx  []float64
	levels  int
}

// Levels returns J, the decomposition depth.
func (r MultiLevelResult) Levels() int { return r.levels }

// N returns the signal length the coefficients were computed at.
func (r MultiLevelResult) N() int { return len(r.approx) }

// Detail returns a copy of level j's (1-indexed) detail coefficients.
// Panics if j is outside [1, Levels()].
func (r MultiLevelResult) Detail(j int) []float64 {
	r.checkLevel(j)
	return cloneSlice(r.details[j-1])
}

// Approx returns a copy of the final-level (level J) approximation
// coefficients.
func (r MultiLevelResult) Approx() []float64 { return cloneSlice(r.approx) }

func (r MultiLevelResult) checkLevel(j int) {
	if j < 1 || j > r.levels {
		panic("modwt: level out of range")
	}
}

// Mutable returns a MutableMultiLevelResult holding independent copies of
// this result's coefficients, for callers (the denoiser) that need to
// overwrite detail coefficients in place before reconstruction.
func (r MultiLevelResult) Mutable() *MutableMultiLevelResult {
	details := make([][]float64, len(r.details))
	for i, d := range r.details {
		details[i] = cloneSlice(d)
	}
	return &MutableMultiLevelResult{
		details: details,
		approx:  cloneSlice(r.approx),
		levels:  r.levels,
	}
}

// MutableMultiLevelResult has the same shape as MultiLevelResult but
// permits in-place modification of its detail coefficients — used only
// by denoising paths that own the result outright (spec.md's Data
// Model).
type MutableMultiLevelResult struct {
	details [][]float64
	approx  []float64
	levels  int
}

// Levels returns J, the decomposition depth.
func (r *MutableMultiLevelResult) Levels() int { return r.levels }

// N returns the signal length.
func (r *MutableMultiLevelResult) N() int { return len(r.approx) }

// Detail returns the live (not copied) detail coefficients for level j,
// so callers can mutate them in place.
func (r *MutableMultiLevelResult) Detail(j int) []float64 {
	if j < 1 || j > r.levels {
		panic("modwt: level out of range")
	}
	return r.details[j-1]
}

// Approx returns the live (not copied) final-level approximation.
func (r *MutableMultiLevelResult) Approx() []float64 { return r.approx }

// Freeze returns an immutable MultiLevelResult snapshot of the current
// coefficient state.
func (r *MutableMultiLevelResult) Freeze() MultiLevelResult {
	details := make([][]float64, len(r.details))
	for i, d := range r.details {
		details[i] = cloneSlice(d)
	}
	return MultiLevelResult{
		details: details,
		approx:  cloneSlice(r.approx),
		levels:  r.levels,
	}
}

func cloneSlice(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
