package gemm

// Correct computes dst = alpha*dst + beta*(lhs @ rhs) with an unblocked
// triple loop and left-to-right summation over the depth dimension. It is
// the correctness oracle gemm.Basic and gemm.Simple are tested against:
// BlockingParams, packing, and the microkernel dispatch table play no part
// here, only View.Get/Set.
//
// alpha is ignored (treated as zero) when readDst is false, since dst is
// never read in that case, only overwritten.
func Correct(m, n, k int, dst View, readDst bool, lhs, rhs View, alpha, beta float64) {
	if m == 0 || n == 0 {
		return
	}
	if k == 0 {
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				if readDst {
					dst.Set(i, j, alpha*dst.Get(i, j))
				} else {
					dst.Set(i, j, 0)
				}
			}
		}
		return
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for d := 0; d < k; d++ {
				sum += lhs.Get(i, d) * rhs.Get(d, j)
			}
			if readDst {
				dst.Set(i, j, alpha*dst.Get(i, j)+beta*sum)
			} else {
				dst.Set(i, j, beta*sum)
			}
		}
	}
}
