package gemm

import (
	"unsafe"

	"github.com/ajroetker/gemmcore/hwy"
)

// MaxThreads bounds the thread count gemm.Basic accepts. A caller asking
// for more than this gets MaxThreads instead of a panic: it is a resource
// cap, not a correctness precondition.
const MaxThreads = 64

// AlignBytes is the alignment PackRHS/PackLHS scratch regions are reserved
// at: one hwy.Vec's worth of float64s, so the microkernel's Load/Store calls
// never straddle a cache-line-unfriendly boundary.
const AlignBytes = hwy.N * elemSize

// ScratchElems returns the number of float64 elements gemm.Basic needs for
// the given blocking parameters and thread count: one shared packed-RHS
// region plus one packed-LHS region per thread, with enough slack to
// align each region independently.
func ScratchElems(p BlockingParams, nThreads int) int {
	nThreads = clampThreads(nThreads)
	alignElems := AlignBytes / elemSize
	return p.PackedRHSElems() + nThreads*p.PackedLHSElems() + (1+nThreads)*alignElems
}

func clampThreads(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxThreads {
		return MaxThreads
	}
	return n
}

// Scratch is a bump-allocated arena of float64s, reserved once by the
// caller (typically sized via ScratchElems) and handed to gemm.Basic. It is
// the Go-idiomatic shape of spec's "planned byte arena": a single
// allocation the driver subdivides internally and never resizes, rather
// than the driver calling make() on its own hot path.
type Scratch struct {
	buf []float64
	off int
}

// NewScratch allocates a Scratch with ScratchElems(p, nThreads) capacity.
func NewScratch(p BlockingParams, nThreads int) *Scratch {
	return &Scratch{buf: make([]float64, ScratchElems(p, nThreads))}
}

// Plan resets the arena and carves out the packed-RHS region and one
// packed-LHS region per thread, each aligned to AlignBytes. It panics if
// the arena is smaller than ScratchElems(p, nThreads) requires.
func (s *Scratch) Plan(p BlockingParams, nThreads int) (rhsBuf []float64, lhsBufs [][]float64) {
	nThreads = clampThreads(nThreads)
	s.off = 0

	rhsBuf = s.reserveAligned(p.PackedRHSElems())
	lhsBufs = make([][]float64, nThreads)
	for t := range lhsBufs {
		lhsBufs[t] = s.reserveAligned(p.PackedLHSElems())
	}
	return rhsBuf, lhsBufs
}

func (s *Scratch) reserveAligned(n int) []float64 {
	pad := 0
	if len(s.buf) > s.off {
		addr := uintptr(unsafe.Pointer(&s.buf[s.off]))
		if rem := addr % AlignBytes; rem != 0 {
			pad = int((AlignBytes - rem) / elemSize)
		}
	}

	start := s.off + pad
	end := start + n
	if end > len(s.buf) {
		panic("gemm: scratch arena too small")
	}
	region := s.buf[start:end]
	s.off = end
	return region
}
