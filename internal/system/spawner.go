// internal/system/spawner.go
package system

import (
	"sarian/internal/component"
	"sarian/internal/config"
	"sarian/internal/entity"
	"sarian/internal/types"
	"sarian/internal/utils"
)

// SpawnerSystem раз в интервал выпускает астероид с кольца вокруг планеты.
// Таймер копит только переданное ему время, поэтому пауза его замораживает.
type SpawnerSystem struct {
	ecs      *entity.ECS
	rng      *utils.PRNGService
	interval float64
	distance float64
	speed    float64
	radius   float64
	size     float64
	timer    float64 // мс с последнего спавна
}

func NewSpawnerSystem(ecs *entity.ECS, cfg config.Config, rng *utils.PRNGService) *SpawnerSystem {
	return &SpawnerSystem{
		ecs:      ecs,
		rng:      rng,
		interval: cfg.Spawner.IntervalMs,
		distance: cfg.Spawner.Distance,
		speed:    cfg.Asteroid.Speed,
		radius:   cfg.Asteroid.Radius(),
		size:     cfg.Asteroid.SpriteSize,
	}
}

func (s *SpawnerSystem) Update(elapsedMs float64) {
	s.timer += elapsedMs
	if s.timer >= s.interval {
		s.SpawnAt(s.rng.Angle())
		s.timer = 0
	}
}

// Remaining — сколько мс осталось до следующего спавна
func (s *SpawnerSystem) Remaining() float64 {
	return s.interval - s.timer
}

func (s *SpawnerSystem) Reset() {
	s.timer = 0
}

// SpawnAt создаёт астероид на расстоянии distance от планеты под углом angle (градусы),
// летящий к центру планеты.
func (s *SpawnerSystem) SpawnAt(angle float64) types.EntityID {
	planet := s.ecs.Planet
	x, y := utils.Polar(planet.X, planet.Y, s.distance, angle)
	origin := component.Position{X: x, Y: y}
	vel := component.AimAt(origin, component.Position{X: planet.X, Y: planet.Y}, s.speed)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &origin
	s.ecs.Velocities[id] = &vel
	s.ecs.Asteroids[id] = &component.Asteroid{Radius: s.radius, Size: s.size}
	return id
}
