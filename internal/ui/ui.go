// internal/ui/ui.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel — источник для DrawTriangles, цвет задаётся вершинами
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
}()
