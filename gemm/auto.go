package gemm

import "runtime"

// SmallMatrixThreshold is the total-multiply-add count below which Auto
// picks Simple over Basic, the same two-tier shape as the teacher's
// dispatch.go MatMulAuto: below this, packing overhead dominates actual
// compute, so the unblocked single-threaded path wins.
const SmallMatrixThreshold = 64 * 64 * 64

// Auto picks Simple for small problems and Basic (parallelized across
// runtime.GOMAXPROCS threads) for large ones, allocating its own scratch
// arena for the Basic path. Callers driving many GEMMs of similar size
// should call DeriveBlocking/NewScratch/Basic directly instead, to reuse
// one Scratch across calls rather than allocating one per call here.
func Auto(m, n, k int, dst View, readDst bool, lhs, rhs View, alpha, beta float64) {
	if int64(m)*int64(n)*int64(k) < SmallMatrixThreshold {
		Simple(m, n, k, dst, readDst, lhs, rhs, alpha, beta)
		return
	}

	nThreads := runtime.GOMAXPROCS(0)
	params := DeriveBlocking(MR, NR, elemSize)
	scratch := NewScratch(params, nThreads)
	Basic(m, n, k, dst, readDst, lhs, rhs, alpha, beta, nThreads, scratch)
}
