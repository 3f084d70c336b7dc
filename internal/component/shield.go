// internal/component/shield.go
package component

import (
	"math"
	"sarian/internal/config"
	"sarian/internal/utils"
)

// Circle — круг коллизии в мировых координатах
type Circle struct {
	X, Y   float64
	Radius float64
}

// Overlaps — пересечение по квадрату расстояния, касание считается попаданием
func (c Circle) Overlaps(o Circle) bool {
	r := c.Radius + o.Radius
	return utils.DistSq(c.X, c.Y, o.X, o.Y) <= r*r
}

// Shield — дуга щита на орбите вокруг планеты.
// Круги коллизии каждый раз выводятся из текущего угла и нигде не кэшируются.
type Shield struct {
	CenterX, CenterY float64 // центр планеты
	OrbitRadius      float64
	Angle            float64 // градусы, всегда в [0, 360)
	StartAngle       float64
	Scale            float64
	Local            []config.LocalCircle
}

// NewShield создаёт щит в стартовом положении
func NewShield(cx, cy float64, cfg config.ShieldConfig) *Shield {
	local := make([]config.LocalCircle, len(cfg.LocalCircles()))
	copy(local, cfg.LocalCircles())
	return &Shield{
		CenterX:     cx,
		CenterY:     cy,
		OrbitRadius: cfg.OrbitRadius,
		Angle:       utils.NormalizeDegrees(cfg.StartAngle),
		StartAngle:  cfg.StartAngle,
		Scale:       cfg.Scale,
		Local:       local,
	}
}

// Rotate поворачивает щит на delta градусов (знак задаёт направление)
func (s *Shield) Rotate(delta float64) {
	s.Angle = utils.NormalizeDegrees(s.Angle + delta)
}

// ResetAngle возвращает щит в стартовый угол
func (s *Shield) ResetAngle() {
	s.Angle = utils.NormalizeDegrees(s.StartAngle)
}

// WorldPosition — центр + радиус орбиты * (cos, sin) угла
func (s *Shield) WorldPosition() (float64, float64) {
	return utils.Polar(s.CenterX, s.CenterY, s.OrbitRadius, s.Angle)
}

// Heading — визуальный поворот спрайта: касательная к орбите
func (s *Shield) Heading() float64 {
	return s.Angle + 90
}

// CollisionCircles переводит локальные круги в мировые координаты:
// поворот на Heading, масштаб Scale, перенос в WorldPosition.
func (s *Shield) CollisionCircles() []Circle {
	wx, wy := s.WorldPosition()
	heading := s.Heading()
	circles := make([]Circle, 0, len(s.Local))
	for _, lc := range s.Local {
		rx, ry := utils.Rotate(lc.X, lc.Y, heading)
		circles = append(circles, Circle{
			X:      wx + rx*s.Scale,
			Y:      wy + ry*s.Scale,
			Radius: math.Abs(lc.Radius * s.Scale),
		})
	}
	return circles
}
