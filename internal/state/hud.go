// internal/state/hud.go
package state

import (
	"sarian/internal/config"
	"sarian/internal/ui"
	"sarian/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudMargin = 12

// hud — интерактивные элементы поверх игровой сцены
type hud struct {
	pauseButton *ui.PauseButton
	lives       *ui.LivesIndicator
	maxLives    int
}

func newHUD(cfg config.Config, colors render.Palette) *hud {
	w := float32(cfg.Screen.Width)
	return &hud{
		pauseButton: ui.NewPauseButton(w-hudMargin-14, hudMargin+48, 14, colors.Text, colors.PlusOne),
		lives:       ui.NewLivesIndicator(w-hudMargin, hudMargin, colors.Lives, colors.Text),
		maxLives:    cfg.Session.Lives,
	}
}

// pauseClicked — был ли в этом кадре клик по кнопке паузы
func (h *hud) pauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	if h.pauseButton.IsClicked(x, y) {
		h.pauseButton.Press()
		return true
	}
	return false
}

func (h *hud) Draw(screen *ebiten.Image, lives int, paused bool) {
	h.lives.Draw(screen, lives, h.maxLives)
	h.pauseButton.Draw(screen, paused)
}
