package utils

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeDegrees(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-720, 0},
		{-1e-14, 0},
		{-1e-12, 360},
	}
	for _, c := range cases {
		got := NormalizeDegrees(c.in)
		// сравнение по модулю 360: 359.999999 и 0 — один угол
		d := math.Abs(got - c.want)
		if math.Min(d, 360-d) > 1e-6 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", c.in, got, c.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDegrees(%v) = %v out of [0,360)", c.in, got)
		}
	}
}

func TestPolarAndRotate(t *testing.T) {
	x, y := Polar(100, 100, 10, 90)
	if math.Abs(x-100) > eps || math.Abs(y-110) > eps {
		t.Fatalf("Polar(100,100,10,90) = (%v,%v), want (100,110)", x, y)
	}

	rx, ry := Rotate(1, 0, 90)
	if math.Abs(rx) > eps || math.Abs(ry-1) > eps {
		t.Fatalf("Rotate(1,0,90) = (%v,%v), want (0,1)", rx, ry)
	}
}

func TestDistSq(t *testing.T) {
	if got := DistSq(100, 100, 105, 100); got != 25 {
		t.Fatalf("DistSq = %v, want 25", got)
	}
}

func TestPRNGServiceIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		av, bv := a.Angle(), b.Angle()
		if av != bv {
			t.Fatalf("step %d: %v != %v for same seed", i, av, bv)
		}
		if av < 0 || av >= 360 {
			t.Fatalf("angle %v out of [0,360)", av)
		}
	}
	r := a.Range(0.3, 0.6)
	if r < 0.3 || r >= 0.6 {
		t.Fatalf("Range(0.3,0.6) = %v", r)
	}
	if r := a.Range(2, 2); r != 2 {
		t.Fatalf("Range(2,2) = %v, want 2", r)
	}
}
