// internal/state/state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID — явный идентификатор текущей сцены
type SceneID string

const (
	SceneTitle SceneID = "title"
	SceneMain  SceneID = "main"
	ScenePause SceneID = "pause"
)

// State — интерфейс для всех состояний
type State interface {
	ID() SceneID
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	from := sm.Current()
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
	log.Printf("Scene: %s -> %s", from, sm.Current())
}

// Current возвращает идентификатор активной сцены, пустую строку если её нет
func (sm *StateMachine) Current() SceneID {
	if sm.current == nil {
		return ""
	}
	return sm.current.ID()
}

// RequestQuit просит оболочку завершить игру после текущего кадра
func (sm *StateMachine) RequestQuit() {
	sm.quit = true
}

// ShouldQuit сообщает, запрошен ли выход
func (sm *StateMachine) ShouldQuit() bool {
	return sm.quit
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
