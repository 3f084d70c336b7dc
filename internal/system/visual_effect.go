// internal/system/visual_effect.go
package system

import (
	"sarian/internal/component"
	"sarian/internal/config"
	"sarian/internal/entity"
	"sarian/internal/types"
)

// VisualEffectSystem управляет пылью и всплывающими "+1".
type VisualEffectSystem struct {
	ecs *entity.ECS
	cfg config.EffectsConfig
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, cfg config.Config) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, cfg: cfg.Effects}
}

// SpawnImpact создаёт пыль и "+1" в точке отбитого астероида
func (s *VisualEffectSystem) SpawnImpact(x, y, size float64) {
	dustID := s.ecs.NewEntity()
	s.ecs.Positions[dustID] = &component.Position{X: x, Y: y}
	s.ecs.Dusts[dustID] = &component.DustParticle{
		Lifetime: s.cfg.DustLifetime,
		W:        size,
		H:        size,
	}

	textID := s.ecs.NewEntity()
	s.ecs.Positions[textID] = &component.Position{X: x, Y: y}
	s.ecs.PlusOnes[textID] = &component.PlusOne{
		Lifetime: s.cfg.PlusOneLifetime,
		DriftY:   s.cfg.PlusOneDrift,
	}
}

// Update старит все эффекты на один тик и удаляет истёкшие
func (s *VisualEffectSystem) Update() {
	var expired []types.EntityID

	// Пыль сжимается
	for id, dust := range s.ecs.Dusts {
		dust.Age++
		if dust.Expired() {
			expired = append(expired, id)
		}
	}

	// "+1" всплывает вверх
	for id, plus := range s.ecs.PlusOnes {
		plus.Age++
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Y += plus.DriftY
		}
		if plus.Expired() {
			expired = append(expired, id)
		}
	}

	for _, id := range expired {
		s.ecs.RemoveEntity(id)
	}
}
