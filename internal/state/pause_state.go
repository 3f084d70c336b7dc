// internal/state/pause_state.go
package state

import (
	"sarian/internal/app"
	"sarian/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var (
	_ State          = (*PauseState)(nil)
	_ event.Listener = (*PauseState)(nil)
)

// PauseState рисует замороженный кадр игры с затемнением.
// Симуляция не обновляется: в Update игровой сцены мы не заходим.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *MainState
	game          *app.Game
}

func NewPauseState(sm *StateMachine, prevState *MainState, game *app.Game) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		game:          game,
	}
}

func (s *PauseState) ID() SceneID { return ScenePause }

func (s *PauseState) Enter() {
	s.game.EventDispatcher.Subscribe(event.PauseToggled, s)
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		// Сначала уходим со сцены, чтобы снятие паузы не вернуло в игру
		s.stateMachine.SetState(NewTitleState(s.stateMachine, s.game, s.previousState.renderer))
		s.game.TogglePause()
		return
	}
	if anyJustPressed(pauseKeys) || s.previousState.hud.pauseClicked() {
		// Возврат в игру сделает OnEvent
		s.game.TogglePause()
	}
}

// OnEvent: снятие паузы возвращает игровую сцену
func (s *PauseState) OnEvent(e event.Event) {
	if paused, ok := e.Data.(bool); ok && !paused {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.previousState.renderer.DrawPause(screen)
	s.previousState.hud.Draw(screen, s.game.Session().Lives, true)
}

func (s *PauseState) Exit() {
	s.game.EventDispatcher.Unsubscribe(event.PauseToggled, s)
}
