// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие симуляции
type Event struct {
	Type EventType
	Data any // ImpactData для столкновений, nil для остальных
}

// Listener — подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер: Dispatch возвращается после того,
// как все подписчики обработали событие.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch рассылает событие подписчикам в порядке подписки.
// Подписки, сделанные во время рассылки, получат только следующие события.
func (d *Dispatcher) Dispatch(e Event) {
	listeners := d.listeners[e.Type]
	for _, listener := range listeners {
		listener.OnEvent(e)
	}
}
