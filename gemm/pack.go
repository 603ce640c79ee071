package gemm

// PackRHS packs the kChunk x nChunk sub-matrix of src (depth along rows,
// columns along columns) into dst as ceilDiv(nChunk, nr) panels of nr
// columns each, panel j starting at dst[j*panelStride:]. Within a panel,
// depth d's nr values are stored contiguously at offset d*nr. Columns at or
// past nChunk within the last panel are zero-padded; depths at or past
// kChunk are never written, since the microkernel never reads past kChunk
// of a panel it was told has kChunk depth.
//
// panelStride is normally KC*NR (BlockingParams.RHSPanelStride), which may
// exceed kChunk*nr when kChunk < KC — the unused tail of the slot is simply
// left untouched.
func PackRHS(nr, nChunk, kChunk int, dst []float64, src View, panelStride int) {
	numPanels := ceilDiv(nChunk, nr)
	for j := 0; j < numPanels; j++ {
		panelBase := j * panelStride
		colBase := j * nr
		for d := 0; d < kChunk; d++ {
			row := panelBase + d*nr
			for c := 0; c < nr; c++ {
				col := colBase + c
				if col < nChunk {
					dst[row+c] = src.Get(d, col)
				} else {
					dst[row+c] = 0
				}
			}
		}
	}
}

// PackLHS packs the mChunk x kChunk sub-matrix of src (rows along rows,
// depth along columns) into dst as ceilDiv(mChunk, mr) panels of mr rows
// each, panel i starting at dst[i*panelStride:]. Within a panel, depth d's
// mr values are stored contiguously at offset d*mr. Rows at or past mChunk
// within the last panel are zero-padded; depths at or past kChunk are never
// written.
//
// panelStride is normally KC*MR (BlockingParams.LHSPanelStride).
func PackLHS(mr, mChunk, kChunk int, dst []float64, src View, panelStride int) {
	numPanels := ceilDiv(mChunk, mr)
	for i := 0; i < numPanels; i++ {
		panelBase := i * panelStride
		rowBase := i * mr
		for d := 0; d < kChunk; d++ {
			col := panelBase + d*mr
			for r := 0; r < mr; r++ {
				row := rowBase + r
				if row < mChunk {
					dst[col+r] = src.Get(row, d)
				} else {
					dst[col+r] = 0
				}
			}
		}
	}
}
