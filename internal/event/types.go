// internal/event/types.go
package event

const (
	AsteroidBlocked EventType = "AsteroidBlocked" // Астероид отбит щитом
	PlanetHit       EventType = "PlanetHit"       // Астероид долетел до планеты
	LivesExhausted  EventType = "LivesExhausted"  // Жизни кончились, нужен рестарт
	PauseToggled    EventType = "PauseToggled"    // Data: bool, новое значение паузы
)

// ImpactData — данные события столкновения
type ImpactData struct {
	X, Y float64
	Size float64
}
