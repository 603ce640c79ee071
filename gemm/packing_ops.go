package gemm

// applyPackedOutput folds a packed, contiguous mChunkInner x nChunkInner
// tile of raw Σ_d lhs*rhs values (row stride packedStride) into dst:
//
//	dst[i,j] = gamma*dst[i,j] + beta*packed[i,j]   if readDst
//	dst[i,j] =                  beta*packed[i,j]   otherwise
//
// Letting the microkernel write into a small contiguous buffer rather than
// directly into dst keeps its inner loop free of dst's strides; this step
// is the one place those strides are paid for. When dst is unit-column-
// stride (e.g. a row-major destination) it indexes the destination row as a
// contiguous slice instead of going through View.Get/Set per element;
// otherwise it falls back to the general strided path.
//
// There is no SIMD fast path here: nChunkInner never exceeds NR (4), below
// hwy.N (8) lanes, so a tile never has a full vector's worth of contiguous
// output columns to gain from vectorizing this step.
func applyPackedOutput(packed []float64, packedStride int, dst View, mChunkInner, nChunkInner int, gamma, beta float64, readDst bool) {
	if dst.CS == 1 {
		for i := 0; i < mChunkInner; i++ {
			packedRow := packed[i*packedStride:]
			dstRow := dst.Data[dst.index(i, 0):]
			for j := 0; j < nChunkInner; j++ {
				v := beta * packedRow[j]
				if readDst {
					v += gamma * dstRow[j]
				}
				dstRow[j] = v
			}
		}
		return
	}

	for i := 0; i < mChunkInner; i++ {
		packedRow := packed[i*packedStride:]
		for j := 0; j < nChunkInner; j++ {
			v := beta * packedRow[j]
			if readDst {
				v += gamma * dst.Get(i, j)
			}
			dst.Set(i, j, v)
		}
	}
}
