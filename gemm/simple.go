package gemm

import "github.com/ajroetker/gemmcore/hwy"

// Simple computes dst = alpha*dst + beta*(lhs @ rhs) with a single
// unblocked pass: no operand packing, no cache blocking, no threads. It is
// grounded on the teacher's BaseMatMul fast path — gemm.Auto picks it for
// small problems where packing overhead would dominate the actual compute,
// and it is exported directly for callers who know their problem is small.
//
// Simple takes the SIMD fast path (accumulating hwy.N columns of dst at a
// time) whenever dst and rhs both have unit column stride; otherwise it
// falls back to an element-wise inner loop.
func Simple(m, n, k int, dst View, readDst bool, lhs, rhs View, alpha, beta float64) {
	if m == 0 || n == 0 {
		return
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if readDst {
				dst.Set(i, j, alpha*dst.Get(i, j))
			} else {
				dst.Set(i, j, 0)
			}
		}
	}
	if k == 0 {
		return
	}

	contiguous := dst.CS == 1 && rhs.CS == 1

	for i := 0; i < m; i++ {
		for d := 0; d < k; d++ {
			aid := beta * lhs.Get(i, d)
			j := 0

			if contiguous {
				av := hwy.Set(aid)
				dstRow := dst.Data[dst.index(i, 0):]
				rhsRow := rhs.Data[rhs.index(d, 0):]
				for ; j+hwy.N <= n; j += hwy.N {
					b := hwy.Load(rhsRow[j:])
					c := hwy.Load(dstRow[j:])
					c = hwy.MulAdd(av, b, c)
					hwy.Store(c, dstRow[j:])
				}
			}

			for ; j < n; j++ {
				dst.Set(i, j, dst.Get(i, j)+aid*rhs.Get(d, j))
			}
		}
	}
}
