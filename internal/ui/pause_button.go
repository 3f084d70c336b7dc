// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — круглая кнопка паузы в углу экрана
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// Draw: две полоски, пока игра идёт, треугольник "play" на паузе
func (b *PauseButton) Draw(screen *ebiten.Image, paused bool) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if paused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-size*0.6, b.Y-size*0.8)
		path.LineTo(b.X-size*0.6, b.Y+size*0.8)
		path.LineTo(b.X+size*0.8, b.Y)
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		r, g, bl, a := b.PlayColor.RGBA()
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = 1, 1
			vs[i].ColorR = float32(r) / 0xffff
			vs[i].ColorG = float32(g) / 0xffff
			vs[i].ColorB = float32(bl) / 0xffff
			vs[i].ColorA = float32(a) / 0xffff
		}
		screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
		return
	}

	// Два прямоугольника (pause)
	width := size * 0.5
	height := size * 1.6
	spacing := size * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

// IsClicked проверяет попадание курсора в круг кнопки
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

// Press запускает анимацию нажатия
func (b *PauseButton) Press() {
	b.LastClickTime = time.Now()
}
