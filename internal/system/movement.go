// internal/system/movement.go
package system

import (
	"sarian/internal/config"
	"sarian/internal/entity"
	"sarian/internal/types"
)

// MovementSystem двигает астероиды по прямой и удаляет улетевшие за экран
type MovementSystem struct {
	ecs    *entity.ECS
	width  float64
	height float64
	margin float64
}

func NewMovementSystem(ecs *entity.ECS, cfg config.Config) *MovementSystem {
	return &MovementSystem{
		ecs:    ecs,
		width:  float64(cfg.Screen.Width),
		height: float64(cfg.Screen.Height),
		margin: cfg.Asteroid.CullMargin,
	}
}

// Update сдвигает каждый астероид на velocity * dtTicks.
// Вылетевшие за границы удаляются в этом же тике, после прохода.
func (s *MovementSystem) Update(dtTicks float64) {
	var culled []types.EntityID
	for id := range s.ecs.Asteroids {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		pos.Advance(*vel, dtTicks)
		if pos.OutOfBounds(s.width, s.height, s.margin) {
			culled = append(culled, id)
		}
	}

	for _, id := range culled {
		s.ecs.RemoveEntity(id)
	}
}
