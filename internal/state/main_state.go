// internal/state/main_state.go
package state

import (
	"sarian/internal/app"
	"sarian/internal/event"
	"sarian/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что MainState соответствует интерфейсу State
var (
	_ State          = (*MainState)(nil)
	_ event.Listener = (*MainState)(nil)
)

// MainState — игровая сцена
type MainState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
	hud      *hud
}

func NewMainState(sm *StateMachine, game *app.Game, renderer *render.Renderer) *MainState {
	return &MainState{sm: sm, game: game, renderer: renderer, hud: newHUD(game.Config, render.DefaultPalette())}
}

func (m *MainState) ID() SceneID { return SceneMain }

// Enter подписывает сцену на паузу, пока она активна
func (m *MainState) Enter() {
	m.game.EventDispatcher.Subscribe(event.PauseToggled, m)
}

// Update: deltaTime в секундах от оболочки, симуляция считает в миллисекундах
func (m *MainState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.SetState(NewTitleState(m.sm, m.game, m.renderer))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		m.renderer.ShowHitboxes = !m.renderer.ShowHitboxes
	}

	input := pollInput()
	if m.hud.pauseClicked() {
		input.TogglePause = true
	}
	m.game.Update(app.Frame{
		ElapsedMs: deltaTime * 1000,
		Input:     input,
	})
}

// OnEvent: пауза, включённая откуда угодно, открывает сцену паузы
func (m *MainState) OnEvent(e event.Event) {
	if paused, ok := e.Data.(bool); ok && paused {
		m.sm.SetState(NewPauseState(m.sm, m, m.game))
	}
}

func (m *MainState) Draw(screen *ebiten.Image) {
	m.renderer.DrawWorld(screen, m.game.ECS)
	session := m.game.Session()
	m.renderer.DrawHUD(screen, session)
	m.hud.Draw(screen, session.Lives, session.Paused)
}

func (m *MainState) Exit() {
	m.game.EventDispatcher.Unsubscribe(event.PauseToggled, m)
}
