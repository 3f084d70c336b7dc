// internal/component/moon.go
package component

// Moon — декоративная луна на круговой орбите. В коллизиях не участвует.
type Moon struct {
	OrbitRadius float64
	Angle       float64 // градусы
	Speed       float64 // градусов за тик
	Scale       float64 // выбирается случайно один раз при создании
}
