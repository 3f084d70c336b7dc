// internal/component/asteroid.go
package component

// Asteroid — летящий к планете астероид.
// Скорость хранится в Velocity и не пересчитывается после спавна.
type Asteroid struct {
	Radius float64 // радиус коллизии
	Size   float64 // размер спрайта, нужен для пыли при уничтожении
}
