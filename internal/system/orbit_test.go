package system

import (
	"math"
	"testing"

	"sarian/internal/config"
	"sarian/internal/utils"
)

func TestOrbitPopulateAndUpdate(t *testing.T) {
	cfg := config.Default()
	ecs := newTestECS(cfg)
	s := NewOrbitSystem(ecs, cfg, utils.NewPRNGService(3))
	s.Populate()

	if len(ecs.Moons) != len(cfg.Moons.Slots) {
		t.Fatalf("moons = %d, want %d", len(ecs.Moons), len(cfg.Moons.Slots))
	}

	for i := 0; i < 2000; i++ {
		s.Update()
	}

	for id, moon := range ecs.Moons {
		if moon.Scale < cfg.Moons.MinScale || moon.Scale >= cfg.Moons.MaxScale {
			t.Errorf("moon %d scale %v outside range", id, moon.Scale)
		}
		if moon.Angle < 0 || moon.Angle >= 360 {
			t.Errorf("moon %d angle %v not wrapped", id, moon.Angle)
		}
		pos := ecs.Positions[id]
		r := math.Hypot(pos.X-ecs.Planet.X, pos.Y-ecs.Planet.Y)
		if math.Abs(r-moon.OrbitRadius) > 1e-6 {
			t.Errorf("moon %d off its orbit: r=%v want %v", id, r, moon.OrbitRadius)
		}
	}
}
