package gemm

import "github.com/ajroetker/gemmcore/hwy"

// MR and NR are the microkernel's register-blocked tile dimensions: MR rows
// (three hwy.Vec rows of hwy.N lanes each) by NR columns. Both are fixed by
// the dispatch table in kernel.go — changing either means re-deriving the
// table's shape, not just these constants.
const (
	MR = 3 * hwy.N // 24
	NR = 4
)

// elemSize is sizeof(float64) in bytes, used by DeriveBlocking's cache-
// capacity arithmetic.
const elemSize = 8

// Target cache sizes the blocking oracle plans around. These are
// conservative, widely-true defaults (not read from the running CPU) the
// same way the teacher's CacheParamsAVX512/AVX2/NEON constructors hard-code
// a level's parameters rather than probing /sys/devices/system/cpu at
// runtime.
const (
	l1Bytes = 32 * 1024
	l2Bytes = 1024 * 1024
	l3Bytes = 8 * 1024 * 1024

	// l1Fraction is the share of L1 the (LHS micro-panel, RHS micro-panel)
	// pair packed per microkernel call may occupy; the remainder is left for
	// the destination tile, loop overhead, and whatever else L1 holds.
	l1Fraction = 0.5
	// l2Fraction is the share of L2 the LHS macro-panel (Mc x Kc) may
	// occupy while it is reused across the N-dimension sweep.
	l2Fraction = 0.5
)

// BlockingParams is the cache oracle's output: the three block sizes
// (Kc, Mc, Nc) a driver walks, alongside the microkernel shape (MR, NR)
// they were derived for.
type BlockingParams struct {
	KC, MC, NC int
	MR, NR     int
}

// DeriveBlocking computes blocking parameters for a microkernel of shape
// (mr, nr) operating on elements of elemSize bytes, by fitting the packed
// operand panels into the target cache levels above. It is a pure function:
// the same (mr, nr, elemSize) always yields the same result.
//
// MC is always a multiple of mr and NC is always a multiple of nr, so that
// gemm's "mc is a multiple of MR" and "nc is a multiple of NR" invariants
// hold by construction.
func DeriveBlocking(mr, nr, elemSize int) BlockingParams {
	kc := int(float64(l1Bytes) * l1Fraction / float64((mr+nr)*elemSize))
	if kc < 1 {
		kc = 1
	}

	mc := int(float64(l2Bytes) * l2Fraction / float64(kc*elemSize))
	mc = roundUpToMultiple(mc, mr)
	if mc < mr {
		mc = mr
	}

	nc := l3Bytes / (kc * elemSize)
	nc = roundUpToMultiple(nc, nr)
	if nc < nr {
		nc = nr
	}

	return BlockingParams{KC: kc, MC: mc, NC: nc, MR: mr, NR: nr}
}

// PackedLHSElems returns the element count of one thread's packed-LHS
// scratch slot: Kc x Mc, since Mc is always a multiple of MR (so the
// ceil(Mc/MR) panels of size Kc*MR pack exactly, with no unused tail slot).
func (p BlockingParams) PackedLHSElems() int {
	return p.KC * p.MC
}

// PackedRHSElems returns the element count of the shared packed-RHS
// scratch region: ceil(Nc/NR) panels of size Kc*NR each.
func (p BlockingParams) PackedRHSElems() int {
	return ceilDiv(p.NC, p.NR) * p.KC * p.NR
}

// LHSPanelStride is the element distance between successive packed-LHS
// panels: Kc * MR, independent of how many rows the current row block
// actually has.
func (p BlockingParams) LHSPanelStride() int {
	return p.KC * p.MR
}

// RHSPanelStride is the element distance between successive packed-RHS
// panels: Kc * NR.
func (p BlockingParams) RHSPanelStride() int {
	return p.KC * p.NR
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func roundUpToMultiple(a, m int) int {
	return ceilDiv(a, m) * m
}
