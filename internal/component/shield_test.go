package component

import (
	"math"
	"reflect"
	"testing"

	"sarian/internal/config"
)

func newTestShield(variant config.ShieldVariant) *Shield {
	cfg := config.Default().Shield
	cfg.Variant = variant
	return NewShield(400, 300, cfg)
}

func TestShieldWorldPosition(t *testing.T) {
	s := newTestShield(config.ShieldTriple)
	s.Angle = 0
	x, y := s.WorldPosition()
	if math.Abs(x-490) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Fatalf("WorldPosition at 0° = (%v,%v), want (490,300)", x, y)
	}
	s.Rotate(90)
	x, y = s.WorldPosition()
	if math.Abs(x-400) > 1e-9 || math.Abs(y-390) > 1e-9 {
		t.Fatalf("WorldPosition at 90° = (%v,%v), want (400,390)", x, y)
	}
}

func TestShieldRotateNormalizes(t *testing.T) {
	s := newTestShield(config.ShieldTriple)
	s.Angle = 350
	s.Rotate(20)
	if math.Abs(s.Angle-10) > 1e-9 {
		t.Fatalf("angle = %v, want 10", s.Angle)
	}
	s.Rotate(-30)
	if math.Abs(s.Angle-340) > 1e-9 {
		t.Fatalf("angle = %v, want 340", s.Angle)
	}
	for i := 0; i < 100000; i++ {
		s.Rotate(7.3)
	}
	if s.Angle < 0 || s.Angle >= 360 {
		t.Fatalf("angle drifted out of range: %v", s.Angle)
	}
}

func TestShieldCollisionCirclesDeterministic(t *testing.T) {
	for _, v := range []config.ShieldVariant{config.ShieldSingle, config.ShieldTriple} {
		s := newTestShield(v)
		s.Rotate(37)
		a := s.CollisionCircles()
		b := s.CollisionCircles()
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("%s: circles differ between calls: %v vs %v", v, a, b)
		}
		if len(a) != len(s.Local) {
			t.Fatalf("%s: got %d circles, want %d", v, len(a), len(s.Local))
		}
	}
}

func TestShieldCollisionCirclesFollowRotation(t *testing.T) {
	s := newTestShield(config.ShieldTriple)
	s.Angle = 270 // сверху планеты, heading = 360 -> без поворота
	wx, wy := s.WorldPosition()
	circles := s.CollisionCircles()
	for i, lc := range s.Local {
		wantX := wx + lc.X*s.Scale
		wantY := wy + lc.Y*s.Scale
		if math.Abs(circles[i].X-wantX) > 1e-9 || math.Abs(circles[i].Y-wantY) > 1e-9 {
			t.Fatalf("circle %d = (%v,%v), want (%v,%v)", i, circles[i].X, circles[i].Y, wantX, wantY)
		}
		if circles[i].Radius != lc.Radius*s.Scale {
			t.Fatalf("circle %d radius = %v, want %v", i, circles[i].Radius, lc.Radius*s.Scale)
		}
	}

	before := s.CollisionCircles()
	s.Rotate(90)
	after := s.CollisionCircles()
	if reflect.DeepEqual(before, after) {
		t.Fatal("circles did not change after rotation")
	}
	// круги вращаются вместе со щитом вокруг центра планеты
	for i := range before {
		d0 := math.Hypot(before[i].X-s.CenterX, before[i].Y-s.CenterY)
		d1 := math.Hypot(after[i].X-s.CenterX, after[i].Y-s.CenterY)
		if math.Abs(d0-d1) > 1e-9 {
			t.Fatalf("circle %d distance to planet changed: %v -> %v", i, d0, d1)
		}
	}
}

func TestCircleOverlaps(t *testing.T) {
	shield := Circle{X: 100, Y: 100, Radius: 10}
	if !shield.Overlaps(Circle{X: 105, Y: 100, Radius: 8}) {
		t.Fatal("expected overlap for distance 5 with radii 10+8")
	}
	if !shield.Overlaps(Circle{X: 118, Y: 100, Radius: 8}) {
		t.Fatal("touching circles must count as a hit")
	}
	if shield.Overlaps(Circle{X: 118.01, Y: 100, Radius: 8}) {
		t.Fatal("unexpected overlap for separated circles")
	}
}
