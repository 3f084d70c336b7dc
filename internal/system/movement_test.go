package system

import (
	"testing"

	"sarian/internal/config"
)

func TestMovementAdvancesByDt(t *testing.T) {
	cfg := config.Default()
	ecs := newTestECS(cfg)
	id := addAsteroid(ecs, 100, 100, 2, -1, 16)

	NewMovementSystem(ecs, cfg).Update(1.5)

	pos := ecs.Positions[id]
	if pos.X != 103 || pos.Y != 98.5 {
		t.Fatalf("position = %+v, want {103 98.5}", *pos)
	}
}

func TestMovementCullsOutOfBoundsSameTick(t *testing.T) {
	cfg := config.Default()
	ecs := newTestECS(cfg)
	leaving := addAsteroid(ecs, 999, 300, 2, 0, 16)    // уйдёт за 800+200
	staying := addAsteroid(ecs, 400, -199, 0, 0.5, 16) // внутри поля с запасом
	outside := addAsteroid(ecs, -150, 300, -60, 0, 16) // за левой границей

	NewMovementSystem(ecs, cfg).Update(1)

	if _, ok := ecs.Asteroids[leaving]; ok {
		t.Fatal("asteroid past the right margin survived the tick")
	}
	if _, ok := ecs.Positions[outside]; ok {
		t.Fatal("asteroid past the left margin still has a position")
	}
	if _, ok := ecs.Asteroids[staying]; !ok {
		t.Fatal("asteroid inside the margin was culled")
	}
}
