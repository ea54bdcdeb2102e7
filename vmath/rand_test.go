package vmath

import "testing"

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("zero seed must not stick at zero")
	}
}

func TestRangeBounds(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		v := Range(r, -80, 140)
		if v < -80 || v >= 140 {
			t.Fatalf("Range out of bounds: %f", v)
		}
		s := Spread(r, 0.5)
		if s < -0.5 || s >= 0.5 {
			t.Fatalf("Spread out of bounds: %f", s)
		}
		n := r.Intn(4)
		if n < 0 || n >= 4 {
			t.Fatalf("Intn out of bounds: %d", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}
