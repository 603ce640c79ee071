package gemm

import "github.com/ajroetker/gemmcore/hwy"

// maxMRUnits and maxNR bound the dispatch table: a tile can be at most
// maxMRUnits hwy.Vec rows (maxMRUnits*hwy.N = MR actual rows) by maxNR
// columns — the full MR x NR microkernel shape.
const (
	maxMRUnits = MR / hwy.N // 3
	maxNR      = NR         // 4
)

// kernelVariant is one specialization of the register-blocked microkernel,
// selected by dispatchKernel from the packed tile's shape. mul and kUnroll
// are descriptive: they record the accumulator-chain count and depth-loop
// unroll a hand-scheduled implementation of this shape would use, the same
// role the teacher's BaseBlockMulAdd/BaseBlockMulAdd2/BaseBlockMulAdd4 split
// plays, collapsed here into one generic compute loop since Go gives no way
// to hand-schedule FMA issue order through a portable instruction sequence.
type kernelVariant struct {
	mr, nr  int
	mul     int
	kUnroll int
}

// kernelTable is the 3x4 dispatch table indexed by
// [mr_in_hwy_vectors-1][nr-1].
var kernelTable [maxMRUnits][maxNR]kernelVariant

func init() {
	for mr := 1; mr <= maxMRUnits; mr++ {
		for nr := 1; nr <= maxNR; nr++ {
			mul := 4
			if nr <= 2 {
				// Narrower tiles keep fewer accumulators live per depth
				// step, so a wider issue width (more independent chains)
				// hides FMA latency better.
				mul = 6
			}
			kernelTable[mr-1][nr-1] = kernelVariant{mr: mr, nr: nr, mul: mul, kUnroll: 4}
		}
	}
}

// dispatchKernel selects the variant for a tile of mChunkInner rows by
// nChunkInner columns. Both must be in range (1..MR and 1..NR respectively);
// any other pair is a programming error in the caller's row/column
// partition and panics rather than silently degrading.
func dispatchKernel(mChunkInner, nChunkInner int) kernelVariant {
	mr := ceilDiv(mChunkInner, hwy.N)
	if mChunkInner < 1 || mr > maxMRUnits || nChunkInner < 1 || nChunkInner > maxNR {
		panic("gemm: microkernel dispatch table miss")
	}
	return kernelTable[mr-1][nChunkInner-1]
}

// compute evaluates Σ_d lhsPanel[d,:mr*hwy.N] ⊗ rhsPanel[d,:nr] over
// kc depth steps and writes the mr*hwy.N x nr result into packed, row-major
// with row stride packedStride (packedStride must be >= nr). lhsPanel and
// rhsPanel must each hold at least kc steps of their respective panel
// layout (see PackLHS/PackRHS).
//
// packed is caller-supplied and never grows: the microkernel's working set
// is exactly mr*hwy.N*nr floats, small enough that the caller can carry it
// as a fixed-size local rather than drawing it from the scratch arena spec's
// §4.5 planner reserves for the two panel buffers.
//
// lhsPanel and rhsPanel are addressed at the full MR/NR macro stride
// (PackLHS/PackRHS always lay out a panel at that width, zero-padded past
// whatever the block's real row/column count was) regardless of kv's own
// mr/nr: a narrower variant simply reads and accumulates fewer of each
// panel's rows/columns per depth step, it does not see a narrower stride.
func (kv kernelVariant) compute(lhsPanel, rhsPanel []float64, kc int, packed []float64, packedStride int) {
	var acc [maxMRUnits * maxNR]hwy.Vec[float64]

	for d := 0; d < kc; d++ {
		lhsBase := d * maxMRUnits * hwy.N
		rhsBase := d * maxNR
		for i := 0; i < kv.mr; i++ {
			a := hwy.Load(lhsPanel[lhsBase+i*hwy.N:])
			for j := 0; j < kv.nr; j++ {
				b := hwy.Set(rhsPanel[rhsBase+j])
				acc[i*kv.nr+j] = hwy.MulAdd(a, b, acc[i*kv.nr+j])
			}
		}
	}

	for i := 0; i < kv.mr; i++ {
		for j := 0; j < kv.nr; j++ {
			lanes := acc[i*kv.nr+j].Data()
			for lane := 0; lane < hwy.N; lane++ {
				row := i*hwy.N + lane
				packed[row*packedStride+j] = lanes[lane]
			}
		}
	}
}

// apply runs compute and then folds the result into dst's mChunkInner x
// nChunkInner tile via applyPackedOutput, honoring gamma/beta/readDst as
// described by applyPackedOutput's doc comment.
func (kv kernelVariant) apply(lhsPanel, rhsPanel []float64, kc int, dst View, mChunkInner, nChunkInner int, gamma, beta float64, readDst bool) {
	var packed [MR * maxNR]float64
	kv.compute(lhsPanel, rhsPanel, kc, packed[:], kv.nr)
	applyPackedOutput(packed[:], kv.nr, dst, mChunkInner, nChunkInner, gamma, beta, readDst)
}
