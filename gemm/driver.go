package gemm

import "github.com/ajroetker/gemmcore/internal/workerpool"

// Basic computes dst = alpha*dst + beta*(lhs @ rhs) for m x k lhs and
// k x n rhs, using DeriveBlocking(MR, NR, 8) to size its N/K/M outer loops,
// PackRHS/PackLHS to pack each slab's operands, and the kernel dispatch
// table to fill each micro-tile. Work within a depth slab is statically
// partitioned across nThreads (clamped to [1, MaxThreads]) by job index, one
// fork-join per slab via internal/workerpool.
//
// scratch must have at least ScratchElems(DeriveBlocking(MR, NR, 8),
// nThreads) elements; Basic panics if it does not. Basic never allocates
// scratch-sized memory itself and never retries: dimension, stride, and
// aliasing preconditions beyond what it can check cheaply are the caller's
// responsibility, exactly as spec's error-handling section describes.
func Basic(m, n, k int, dst View, readDst bool, lhs, rhs View, alpha, beta float64, nThreads int, scratch *Scratch) {
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

	nThreads = clampThreads(nThreads)
	params := DeriveBlocking(MR, NR, elemSize)
	if params.MC%MR != 0 || params.NC%NR != 0 {
		panic("gemm: blocking MC/NC not a multiple of MR/NR")
	}
	rhsBuf, lhsBufs := scratch.Plan(params, nThreads)

	pool := workerpool.New(nThreads)
	defer pool.Close()

	for colOuter := 0; colOuter < n; colOuter += params.NC {
		nChunk := min(params.NC, n-colOuter)
		nColMini := ceilDiv(nChunk, NR)

		for depthOuter := 0; depthOuter < k; depthOuter += params.KC {
			kChunk := min(params.KC, k-depthOuter)
			first := depthOuter == 0

			gamma := 1.0
			rd := true
			if first {
				gamma = alpha
				rd = readDst
			}

			rhsSrc := rhs.Sub(depthOuter, colOuter)
			PackRHS(NR, nChunk, kChunk, rhsBuf, rhsSrc, params.RHSPanelStride())

			blocks, totalJobs := planRowBlocks(m, params, nColMini)
			if totalJobs == 0 {
				continue
			}

			runSlab := func(tid, start, end int) {
				lhsBuf := lhsBufs[tid]
				for _, blk := range blocks {
					blkEnd := blk.jobsBefore + blk.nRowMini*nColMini
					lo := max(start, blk.jobsBefore)
					hi := min(end, blkEnd)
					if lo >= hi {
						continue
					}

					lhsSrc := lhs.Sub(blk.rowOuter, depthOuter)
					PackLHS(MR, blk.mChunk, kChunk, lhsBuf, lhsSrc, params.LHSPanelStride())

					dstBlock := dst.Sub(blk.rowOuter, colOuter)
					for job := lo - blk.jobsBefore; job < hi-blk.jobsBefore; job++ {
						i := job % blk.nRowMini
						j := job / blk.nRowMini

						mChunkInner := min(MR, blk.mChunk-i*MR)
						nChunkInner := min(NR, nChunk-j*NR)
						kv := dispatchKernel(mChunkInner, nChunkInner)

						lhsPanel := lhsBuf[i*params.LHSPanelStride():]
						rhsPanel := rhsBuf[j*params.RHSPanelStride():]
						tileDst := dstBlock.Sub(i*MR, j*NR)
						kv.apply(lhsPanel, rhsPanel, kChunk, tileDst, mChunkInner, nChunkInner, gamma, beta, rd)
					}
				}
			}

			if nThreads == 1 {
				runSlab(0, 0, totalJobs)
				continue
			}
			pool.ParallelFor(nThreads, func(tidStart, tidEnd int) {
				for tid := tidStart; tid < tidEnd; tid++ {
					start, end := partitionJobs(totalJobs, nThreads, tid)
					runSlab(tid, start, end)
				}
			})
		}
	}
}

type rowBlock struct {
	rowOuter, mChunk, nRowMini, jobsBefore int
}

func planRowBlocks(m int, params BlockingParams, nColMini int) ([]rowBlock, int) {
	var blocks []rowBlock
	total := 0
	for rowOuter := 0; rowOuter < m; rowOuter += params.MC {
		mChunk := min(params.MC, m-rowOuter)
		nRowMini := ceilDiv(mChunk, MR)
		blocks = append(blocks, rowBlock{rowOuter: rowOuter, mChunk: mChunk, nRowMini: nRowMini, jobsBefore: total})
		total += nRowMini * nColMini
	}
	return blocks, total
}

// partitionJobs splits nJobs into nThreads contiguous ranges using the
// classic remainder rule: the first (nJobs mod nThreads) threads get one
// extra job, so every job is covered and no thread's range overlaps
// another's.
func partitionJobs(nJobs, nThreads, tid int) (start, end int) {
	q := nJobs / nThreads
	r := nJobs % nThreads
	if tid < r {
		start = tid * (q + 1)
		return start, start + q + 1
	}
	start = tid*q + r
	return start, start + q
}
