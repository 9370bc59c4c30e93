package rng

import (
	"math/rand"
	"testing"
)

func TestBitRefillsEvery32Calls(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	for i := 0; i < 32; i++ {
		s.Bit()
	}
	if s.bitsAvail != 0 {
		t.Fatalf("bitsAvail after 32 draws = %d, want 0", s.bitsAvail)
	}
	s.Bit()
	if s.bitsAvail != 31 {
		t.Fatalf("bitsAvail after the 33rd draw = %d, want 31 (a refill)", s.bitsAvail)
	}
}

func TestFloat64InUnitInterval(t *testing.T) {
	s := New(rand.New(rand.NewSource(2)))
	for i := 0; i < 1000; i++ {
		v := s.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want value in [0, 1)", v)
		}
	}
}

func TestIntnInRange(t *testing.T) {
	s := New(rand.New(rand.NewSource(3)))
	for i := 0; i < 1000; i++ {
		v := s.Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d, want value in [0, 7)", v)
		}
	}
}
