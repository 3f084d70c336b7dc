// internal/state/title_state.go
package state

import (
	"sarian/internal/app"
	"sarian/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TitleState — титульный экран
type TitleState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
}

func NewTitleState(sm *StateMachine, game *app.Game, renderer *render.Renderer) *TitleState {
	return &TitleState{sm: sm, game: game, renderer: renderer}
}

func (t *TitleState) ID() SceneID { return SceneTitle }

func (t *TitleState) Enter() {}

func (t *TitleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		t.sm.RequestQuit()
		return
	}
	if anyJustPressed(startKeys) {
		t.game.NewSession()
		t.sm.SetState(NewMainState(t.sm, t.game, t.renderer))
	}
}

func (t *TitleState) Draw(screen *ebiten.Image) {
	t.renderer.DrawTitle(screen, t.game.Session().HighScore)
}

func (t *TitleState) Exit() {}
