package gemm

import (
	"math/rand"
	"testing"
)

func TestPackRHSRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const nr = NR
	kChunk, nChunk := 5, 10 // nChunk not a multiple of nr: exercises zero-padding

	data := make([]float64, kChunk*nChunk)
	for i := range data {
		data[i] = rng.Float64()
	}
	src := RowMajor(data, nChunk)

	panelStride := (kChunk + 3) * nr // deliberately larger than kChunk*nr
	numPanels := ceilDiv(nChunk, nr)
	dst := make([]float64, numPanels*panelStride)

	PackRHS(nr, nChunk, kChunk, dst, src, panelStride)

	for j := 0; j < numPanels; j++ {
		for d := 0; d < kChunk; d++ {
			for c := 0; c < nr; c++ {
				col := j*nr + c
				got := dst[j*panelStride+d*nr+c]
				if col < nChunk {
					want := src.Get(d, col)
					if got != want {
						t.Fatalf("panel %d depth %d col %d: got %v, want %v", j, d, c, got, want)
					}
				} else if got != 0 {
					t.Fatalf("panel %d depth %d col %d (padding): got %v, want 0", j, d, c, got)
				}
			}
		}
	}
}

// TestPackRHSNegativeStride packs from a view whose row and column strides
// are both negative, as spec.md §4.2 requires the packers to tolerate. src
// addresses the same kChunk x nChunk matrix as a forward row-major view,
// just back-to-front, so the expected value at a given (d, col) is whatever
// src itself reports there — the point is that PackRHS must not assume
// either stride is positive or unit.
func TestPackRHSNegativeStride(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	const nr = NR
	kChunk, nChunk := 5, 10

	data := make([]float64, kChunk*nChunk)
	for i := range data {
		data[i] = rng.Float64()
	}
	src := View{
		Data: data,
		Base: (kChunk-1)*nChunk + (nChunk - 1),
		RS:   -nChunk,
		CS:   -1,
	}

	panelStride := (kChunk + 3) * nr
	numPanels := ceilDiv(nChunk, nr)
	dst := make([]float64, numPanels*panelStride)

	PackRHS(nr, nChunk, kChunk, dst, src, panelStride)

	for j := 0; j < numPanels; j++ {
		for d := 0; d < kChunk; d++ {
			for c := 0; c < nr; c++ {
				col := j*nr + c
				got := dst[j*panelStride+d*nr+c]
				if col < nChunk {
					want := src.Get(d, col)
					if got != want {
						t.Fatalf("panel %d depth %d col %d: got %v, want %v", j, d, c, got, want)
					}
				} else if got != 0 {
					t.Fatalf("panel %d depth %d col %d (padding): got %v, want 0", j, d, c, got)
				}
			}
		}
	}
}

// TestPackLHSNegativeStride is PackRHS's negative-stride counterpart for
// the LHS packer.
func TestPackLHSNegativeStride(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	const mr = MR
	kChunk, mChunk := 5, 50

	data := make([]float64, mChunk*kChunk)
	for i := range data {
		data[i] = rng.Float64()
	}
	src := View{
		Data: data,
		Base: (mChunk-1)*kChunk + (kChunk - 1),
		RS:   -kChunk,
		CS:   -1,
	}

	panelStride := (kChunk + 2) * mr
	numPanels := ceilDiv(mChunk, mr)
	dst := make([]float64, numPanels*panelStride)

	PackLHS(mr, mChunk, kChunk, dst, src, panelStride)

	for i := 0; i < numPanels; i++ {
		for d := 0; d < kChunk; d++ {
			for r := 0; r < mr; r++ {
				row := i*mr + r
				got := dst[i*panelStride+d*mr+r]
				if row < mChunk {
					want := src.Get(row, d)
					if got != want {
						t.Fatalf("panel %d depth %d row %d: got %v, want %v", i, d, r, got, want)
					}
				} else if got != 0 {
					t.Fatalf("panel %d depth %d row %d (padding): got %v, want 0", i, d, r, got)
				}
			}
		}
	}
}

func TestPackLHSRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const mr = MR
	kChunk, mChunk := 5, 50 // mChunk not a multiple of mr

	data := make([]float64, mChunk*kChunk)
	for i := range data {
		data[i] = rng.Float64()
	}
	src := RowMajor(data, kChunk)

	panelStride := (kChunk + 2) * mr
	numPanels := ceilDiv(mChunk, mr)
	dst := make([]float64, numPanels*panelStride)

	PackLHS(mr, mChunk, kChunk, dst, src, panelStride)

	for i := 0; i < numPanels; i++ {
		for d := 0; d < kChunk; d++ {
			for r := 0; r < mr; r++ {
				row := i*mr + r
				got := dst[i*panelStride+d*mr+r]
				if row < mChunk {
					want := src.Get(row, d)
					if got != want {
						t.Fatalf("panel %d depth %d row %d: got %v, want %v", i, d, r, got, want)
					}
				} else if got != 0 {
					t.Fatalf("panel %d depth %d row %d (padding): got %v, want 0", i, d, r, got)
				}
			}
		}
	}
}
