// internal/component/movement.go
package component

import "math"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости, единиц за номинальный тик
type Velocity struct {
	X, Y float64
}

// FallbackDirection используется, когда точка старта совпадает с целью
var FallbackDirection = Velocity{X: 1, Y: 0}

// AimAt возвращает скорость модуля speed, направленную от origin к target.
// Если точки совпадают, направление берётся из FallbackDirection.
func AimAt(origin, target Position, speed float64) Velocity {
	dx := target.X - origin.X
	dy := target.Y - origin.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return Velocity{X: FallbackDirection.X * speed, Y: FallbackDirection.Y * speed}
	}
	return Velocity{X: dx / dist * speed, Y: dy / dist * speed}
}

// Advance сдвигает позицию на vel * dtTicks
func (p *Position) Advance(vel Velocity, dtTicks float64) {
	p.X += vel.X * dtTicks
	p.Y += vel.Y * dtTicks
}

// OutOfBounds сообщает, вышла ли точка за прямоугольник экрана, расширенный на margin с каждой стороны
func (p Position) OutOfBounds(width, height, margin float64) bool {
	return p.X < -margin || p.X > width+margin || p.Y < -margin || p.Y > height+margin
}
