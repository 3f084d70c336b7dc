// internal/entity/ecs.go
package entity

import (
	"sarian/internal/component"
	"sarian/internal/types"
)

type ECS struct {
	GameTime   float64 // накопленное непаузное время, мс
	Tick       uint64
	NextID     types.EntityID
	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Asteroids  map[types.EntityID]*component.Asteroid
	Moons      map[types.EntityID]*component.Moon
	Dusts      map[types.EntityID]*component.DustParticle
	PlusOnes   map[types.EntityID]*component.PlusOne
	Planet     *component.Planet
	Shield     *component.Shield
	Session    *component.Session
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Positions:  make(map[types.EntityID]*component.Position),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Asteroids:  make(map[types.EntityID]*component.Asteroid),
		Moons:      make(map[types.EntityID]*component.Moon),
		Dusts:      make(map[types.EntityID]*component.DustParticle),
		PlusOnes:   make(map[types.EntityID]*component.PlusOne),
		Session:    &component.Session{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Asteroids, id)
	delete(ecs.Moons, id)
	delete(ecs.Dusts, id)
	delete(ecs.PlusOnes, id)
}

// ClearTransient удаляет все сущности сессии: астероиды, эффекты и луны.
// Планета, щит и счёт не трогаются.
func (ecs *ECS) ClearTransient() {
	clear(ecs.Positions)
	clear(ecs.Velocities)
	clear(ecs.Asteroids)
	clear(ecs.Moons)
	clear(ecs.Dusts)
	clear(ecs.PlusOnes)
}
