package pool

import "testing"

func TestGetOnMissReturnsCorrectLength(t *testing.T) {
	p := New(0)
	buf := p.Get(16)
	if len(buf) != 16 {
		t.Fatalf("len = %d, want 16", len(buf))
	}
}

// TestPutGetReusesBufferWithoutZeroing covers spec.md §4.7's "acquisition
// MUST NOT move data — returned buffers are uninitialized": a reused
// buffer carries over whatever its last holder wrote.
func TestPutGetReusesBufferWithoutZeroing(t *testing.T) {
	p := New(0)
	buf := p.Get(32)
	buf[0] = 7
	p.Put(buf)

	_, misses := p.Stats()
	if misses != 1 {
		t.Fatalf("misses = %d, want 1", misses)
	}

	reused := p.Get(32)
	hits, _ := p.Stats()
	if hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}
	if reused[0] != 7 {
		t.Fatalf("reused[0] = %v, want 7 (leftover from prior use, not zeroed)", reused[0])
	}
}

func TestPerSizeCapEnforced(t *testing.T) {
	p := New(2)
	for i := 0; i < 5; i++ {
		p.Put(make([]float64, 10))
	}
	p.classesLenForTest(t, 10, 2)
}

func (p *Pool) classesLenForTest(t *testing.T, n, want int) {
	t.Helper()
	p.mu.Lock()
	got := len(p.classes[n])
	p.mu.Unlock()
	if got != want {
		t.Fatalf("retained = %d, want %d", got, want)
	}
}

func TestClearDropsRetainedBuffers(t *testing.T) {
	p := New(0)
	p.Put(make([]float64, 8))
	p.Clear()
	p.classesLenForTest(t, 8, 0)
}

func TestDifferentSizeClassesIndependent(t *testing.T) {
	p := New(0)
	p.Put(make([]float64, 4))
	p.Put(make([]float64, 8))

	a := p.Get(4)
	b := p.Get(8)
	if len(a) != 4 || len(b) != 8 {
		t.Fatal("size classes leaked into each other")
	}
}
