// internal/system/collision.go
package system

import (
	"maps"
	"slices"

	"sarian/internal/component"
	"sarian/internal/entity"
	"sarian/internal/event"
	"sarian/internal/types"
)

// CollisionResult — итог проверки столкновений за тик
type CollisionResult struct {
	Blocked int
	Reached int
}

// CollisionSystem проверяет астероиды против щита и планеты.
// Щит проверяется первым: астероид, задевший и щит и планету, считается отбитым.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		effects:         effects,
	}
}

type impact struct {
	id   types.EntityID
	data event.ImpactData
}

func (s *CollisionSystem) Update() CollisionResult {
	if s.ecs.Shield == nil || s.ecs.Planet == nil {
		return CollisionResult{}
	}

	shieldCircles := s.ecs.Shield.CollisionCircles()
	planet := s.ecs.Planet.Circle()

	// Сначала собираем решения, удаляем после прохода
	var blocked, reached []impact
	for _, id := range slices.Sorted(maps.Keys(s.ecs.Asteroids)) {
		ast := s.ecs.Asteroids[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		body := component.Circle{X: pos.X, Y: pos.Y, Radius: ast.Radius}
		hit := impact{id: id, data: event.ImpactData{X: pos.X, Y: pos.Y, Size: ast.Size}}

		if hitsAny(body, shieldCircles) {
			blocked = append(blocked, hit)
			continue
		}
		if body.Overlaps(planet) {
			reached = append(reached, hit)
		}
	}

	for _, hit := range blocked {
		s.ecs.RemoveEntity(hit.id)
		if s.effects != nil {
			s.effects.SpawnImpact(hit.data.X, hit.data.Y, hit.data.Size)
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.AsteroidBlocked, Data: hit.data})
	}
	for _, hit := range reached {
		s.ecs.RemoveEntity(hit.id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlanetHit, Data: hit.data})
	}

	return CollisionResult{Blocked: len(blocked), Reached: len(reached)}
}

// hitsAny останавливается на первом пересечении
func hitsAny(body component.Circle, circles []component.Circle) bool {
	for _, c := range circles {
		if body.Overlaps(c) {
			return true
		}
	}
	return false
}
