package gemm

import (
	"math/rand"
	"testing"
)

func benchmarkBasic(b *testing.B, m, n, k, nThreads int) {
	rng := rand.New(rand.NewSource(1))
	lhs := randomView(rng, m, k)
	rhs := randomView(rng, k, n)
	dst := randomView(rng, m, n)
	params := DeriveBlocking(MR, NR, elemSize)
	scratch := NewScratch(params, nThreads)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Basic(m, n, k, dst, true, lhs, rhs, 1, 1, nThreads, scratch)
	}
}

func BenchmarkBasic256x256x256_1Thread(b *testing.B)  { benchmarkBasic(b, 256, 256, 256, 1) }
func BenchmarkBasic256x256x256_8Threads(b *testing.B) { benchmarkBasic(b, 256, 256, 256, 8) }

func BenchmarkSimple64x64x64(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	const m, n, k = 64, 64, 64
	lhs := randomView(rng, m, k)
	rhs := randomView(rng, k, n)
	dst := randomView(rng, m, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Simple(m, n, k, dst, true, lhs, rhs, 1, 1)
	}
}
