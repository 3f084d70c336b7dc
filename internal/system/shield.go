// internal/system/shield.go
package system

import (
	"sarian/internal/config"
	"sarian/internal/entity"
)

// ShieldSystem поворачивает щит по вводу игрока
type ShieldSystem struct {
	ecs   *entity.ECS
	speed float64
}

func NewShieldSystem(ecs *entity.ECS, cfg config.Config) *ShieldSystem {
	return &ShieldSystem{ecs: ecs, speed: cfg.Shield.RotateSpeed}
}

// Update: direction -1 — против часовой (влево), +1 — по часовой, 0 — стоим
func (s *ShieldSystem) Update(direction int, dtTicks float64) {
	if direction == 0 || s.ecs.Shield == nil {
		return
	}
	s.ecs.Shield.Rotate(float64(direction) * s.speed * dtTicks)
}
