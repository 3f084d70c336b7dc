// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LifeCircleRadius  = 7.0
	LifeCircleSpacing = 6.0
)

// LivesIndicator отображает жизни рядом кружков справа налево от (X, Y)
type LivesIndicator struct {
	X, Y       float32
	FullColor  color.Color
	EmptyColor color.Color
}

func NewLivesIndicator(x, y float32, full, empty color.Color) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, FullColor: full, EmptyColor: empty}
}

// Draw рисует maxLives кружков, из них lives закрашены
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	for j := 0; j < maxLives; j++ {
		cx := i.X - LifeCircleRadius - float32(j)*(LifeCircleRadius*2+LifeCircleSpacing)
		cy := i.Y + LifeCircleRadius
		if j < lives {
			vector.DrawFilledCircle(screen, cx, cy, LifeCircleRadius, i.FullColor, true)
		}
		// Белая обводка у всех ячеек
		vector.StrokeCircle(screen, cx, cy, LifeCircleRadius, 1, i.EmptyColor, true)
	}
}
