// internal/system/orbit.go
package system

import (
	"sarian/internal/component"
	"sarian/internal/config"
	"sarian/internal/entity"
	"sarian/internal/utils"
)

// OrbitSystem крутит декоративные луны вокруг планеты
type OrbitSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
	cfg config.MoonConfig
}

func NewOrbitSystem(ecs *entity.ECS, cfg config.Config, rng *utils.PRNGService) *OrbitSystem {
	return &OrbitSystem{ecs: ecs, rng: rng, cfg: cfg.Moons}
}

// Populate создаёт по луне на каждый слот орбиты со случайным масштабом
func (s *OrbitSystem) Populate() {
	for _, slot := range s.cfg.Slots {
		id := s.ecs.NewEntity()
		moon := &component.Moon{
			OrbitRadius: slot.Radius,
			Angle:       utils.NormalizeDegrees(slot.StartAngle),
			Speed:       slot.Speed,
			Scale:       s.rng.Range(s.cfg.MinScale, s.cfg.MaxScale),
		}
		s.ecs.Moons[id] = moon
		s.ecs.Positions[id] = s.position(moon)
	}
}

// Update: угол += скорость (по модулю 360), позиция пересчитывается из угла
func (s *OrbitSystem) Update() {
	for id, moon := range s.ecs.Moons {
		moon.Angle = utils.NormalizeDegrees(moon.Angle + moon.Speed)
		if pos, ok := s.ecs.Positions[id]; ok {
			*pos = *s.position(moon)
		}
	}
}

func (s *OrbitSystem) position(moon *component.Moon) *component.Position {
	x, y := utils.Polar(s.ecs.Planet.X, s.ecs.Planet.Y, moon.OrbitRadius, moon.Angle)
	return &component.Position{X: x, Y: y}
}
