package hwy

import (
	"math/rand"
	"testing"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := make([]float64, N)
	for i := range src {
		src[i] = rng.Float64()
	}
	v := Load(src)
	dst := make([]float64, N)
	Store(v, dst)
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("lane %d: got %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestSetZero(t *testing.T) {
	v := Set(3.5)
	for i, x := range v.Data() {
		if x != 3.5 {
			t.Fatalf("lane %d: got %v, want 3.5", i, x)
		}
	}
	z := Zero[float64]()
	for i, x := range z.Data() {
		if x != 0 {
			t.Fatalf("lane %d: got %v, want 0", i, x)
		}
	}
}

func TestMulAdd(t *testing.T) {
	a := Set(2.0)
	b := Set(3.0)
	c := Set(1.0)
	got := MulAdd(a, b, c)
	for i, x := range got.Data() {
		if x != 7.0 {
			t.Fatalf("lane %d: got %v, want 7.0", i, x)
		}
	}
}

func TestAddMul(t *testing.T) {
	a := Set(1.0)
	b := Set(4.0)
	if s := Add(a, b); s.Data()[0] != 5.0 {
		t.Fatalf("Add: got %v, want 5.0", s.Data()[0])
	}
	if p := Mul(a, b); p.Data()[0] != 4.0 {
		t.Fatalf("Mul: got %v, want 4.0", p.Data()[0])
	}
}
