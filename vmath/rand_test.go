package vmath

import "testing"

// TestFastRandDeterministic verifies equal seeds replay the same sequence
func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at %d", i)
		}
	}
}

// TestFastRandZeroSeed verifies the zero seed does not stall
func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Zero seed produced a stuck generator")
	}
}

// TestFastRandFloat64Range verifies the unit interval
func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn with non-positive n should return 0")
	}
}
