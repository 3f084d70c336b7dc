package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(AsteroidBlocked, a)
	d.Subscribe(AsteroidBlocked, b)
	d.Subscribe(PlanetHit, b)

	d.Dispatch(Event{Type: AsteroidBlocked, Data: ImpactData{X: 1, Y: 2, Size: 3}})
	d.Dispatch(Event{Type: PlanetHit})

	if len(a.got) != 1 || len(b.got) != 2 {
		t.Fatalf("deliveries a=%d b=%d, want 1 and 2", len(a.got), len(b.got))
	}
	if data, ok := a.got[0].Data.(ImpactData); !ok || data.Size != 3 {
		t.Fatalf("unexpected payload %#v", a.got[0].Data)
	}

	d.Unsubscribe(AsteroidBlocked, a)
	d.Dispatch(Event{Type: AsteroidBlocked})
	if len(a.got) != 1 {
		t.Fatal("unsubscribed listener still receives events")
	}
}

// handoff при первом событии передаёт подписку следующему слушателю,
// как это делают сцены при переключении
type handoff struct {
	d    *Dispatcher
	next Listener
	got  int
}

func (h *handoff) OnEvent(e Event) {
	h.got++
	h.d.Unsubscribe(e.Type, h)
	h.d.Subscribe(e.Type, h.next)
}

func TestSubscriptionChangesDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	next := &recorder{}
	first := &handoff{d: d, next: next}
	d.Subscribe(PauseToggled, first)

	d.Dispatch(Event{Type: PauseToggled, Data: true})
	if first.got != 1 || len(next.got) != 0 {
		t.Fatalf("first dispatch: first=%d next=%d, want 1 and 0", first.got, len(next.got))
	}

	d.Dispatch(Event{Type: PauseToggled, Data: false})
	if first.got != 1 {
		t.Fatal("unsubscribed listener received the second event")
	}
	if len(next.got) != 1 || next.got[0].Data != false {
		t.Fatalf("next listener got %#v, want one event with false", next.got)
	}
}
