// internal/system/session.go
package system

import (
	"sarian/internal/entity"
	"sarian/internal/event"
)

// SessionSystem ведёт счёт и жизни по событиям столкновений
type SessionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewSessionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *SessionSystem {
	s := &SessionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.AsteroidBlocked, s)
	eventDispatcher.Subscribe(event.PlanetHit, s)
	return s
}

func (s *SessionSystem) OnEvent(e event.Event) {
	session := s.ecs.Session
	switch e.Type {
	case event.AsteroidBlocked:
		session.Score++
		if session.Score > session.HighScore {
			session.HighScore = session.Score
		}
	case event.PlanetHit:
		session.Lives--
		if session.Lives <= 0 {
			s.eventDispatcher.Dispatch(event.Event{Type: event.LivesExhausted})
		}
	}
}

// Restart сбрасывает счёт и жизни. Рекорд остаётся.
func (s *SessionSystem) Restart(lives int) {
	session := s.ecs.Session
	session.Score = 0
	session.Lives = lives
	session.Paused = false
}
