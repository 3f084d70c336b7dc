// internal/state/input.go
package state

import (
	"sarian/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	rotateLeftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rotateRightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	pauseKeys       = []ebiten.Key{ebiten.KeyP}
	startKeys       = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// pollInput опрашивает клавиатуру. Поворот — пока клавиша зажата, пауза — по нажатию.
func pollInput() app.Input {
	return app.Input{
		RotateLeft:  anyPressed(rotateLeftKeys),
		RotateRight: anyPressed(rotateRightKeys),
		TogglePause: anyJustPressed(pauseKeys),
	}
}
