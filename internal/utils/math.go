// internal/utils/math.go
package utils

import "math"

// DegToRad переводит градусы в радианы
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeDegrees нормализует угол в диапазон [0, 360)
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	// отрицательный угол меньше половины ulp от 360 (около -2.8e-14) после +360 округляется до 360
	if angle >= 360 {
		angle = 0
	}
	return angle
}

// Polar возвращает точку на окружности радиуса r вокруг (cx, cy) под углом deg.
func Polar(cx, cy, r, deg float64) (float64, float64) {
	rad := DegToRad(deg)
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}

// Rotate поворачивает вектор (x, y) на deg градусов вокруг начала координат
func Rotate(x, y, deg float64) (float64, float64) {
	rad := DegToRad(deg)
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}

// DistSq — квадрат расстояния между точками
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

