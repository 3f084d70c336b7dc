package system

import (
	"sarian/internal/component"
	"sarian/internal/config"
	"sarian/internal/entity"
	"sarian/internal/types"
)

func newTestECS(cfg config.Config) *entity.ECS {
	ecs := entity.NewECS()
	cx, cy := float64(cfg.Screen.Width)/2, float64(cfg.Screen.Height)/2
	ecs.Planet = &component.Planet{X: cx, Y: cy, Radius: cfg.Planet.Radius(), DisplaySize: cfg.Planet.DisplaySize}
	ecs.Shield = component.NewShield(cx, cy, cfg.Shield)
	ecs.Session.Lives = cfg.Session.Lives
	return ecs
}

func addAsteroid(ecs *entity.ECS, x, y, vx, vy, radius float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{X: vx, Y: vy}
	ecs.Asteroids[id] = &component.Asteroid{Radius: radius, Size: radius * 2}
	return id
}
