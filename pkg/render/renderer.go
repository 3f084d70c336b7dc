// pkg/render/renderer.go
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"sarian/internal/component"
	"sarian/internal/config"
	"sarian/internal/entity"
	"sarian/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudFontSize     = 18
	titleFontSize   = 48
	plusOneFontSize = 16
	hudMargin       = 12
	arcSegments     = 16
)

// Renderer рисует состояние симуляции средствами ebiten.
// Сам ничего не меняет в ECS.
type Renderer struct {
	cfg       config.Config
	colors    Palette
	hudFace   *text.GoTextFace
	titleFace *text.GoTextFace
	plusFace  *text.GoTextFace

	ShowHitboxes bool
}

func NewRenderer(cfg config.Config, colors Palette) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Renderer{
		cfg:       cfg,
		colors:    colors,
		hudFace:   &text.GoTextFace{Source: src, Size: hudFontSize},
		titleFace: &text.GoTextFace{Source: src, Size: titleFontSize},
		plusFace:  &text.GoTextFace{Source: src, Size: plusOneFontSize},
	}, nil
}

// DrawWorld рисует сцену: луны, планету, щит, астероиды, эффекты
func (r *Renderer) DrawWorld(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(r.colors.Background)

	// Луны позади планеты
	for id, moon := range ecs.Moons {
		if pos, ok := ecs.Positions[id]; ok {
			radius := float32(r.cfg.Moons.BaseSize * moon.Scale / 2)
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, r.colors.Moon, true)
		}
	}

	if p := ecs.Planet; p != nil {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.DisplaySize/2), r.colors.Planet, true)
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(p.DisplaySize/2), 2, r.colors.PlanetRim, true)
	}

	if ecs.Shield != nil {
		r.drawShield(screen, ecs.Shield)
	}

	for id, ast := range ecs.Asteroids {
		if pos, ok := ecs.Positions[id]; ok {
			radius := float32(ast.Size / 2)
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, r.colors.Asteroid, true)
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), radius, 2, DarkenColor(r.colors.Asteroid), true)
		}
	}

	for id, dust := range ecs.Dusts {
		if pos, ok := ecs.Positions[id]; ok {
			w, h := dust.Size()
			radius := float32(math.Min(w, h) / 2)
			if radius > 0 {
				vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, r.colors.Dust, true)
			}
		}
	}

	for id, plus := range ecs.PlusOnes {
		if pos, ok := ecs.Positions[id]; ok {
			r.drawText(screen, "+1", r.plusFace, pos.X, pos.Y, r.colors.PlusOne, float32(plus.Alpha()), text.AlignCenter)
		}
	}

	if r.ShowHitboxes {
		r.drawHitboxes(screen, ecs)
	}
}

// drawShield рисует дугу щита ломаной по орбите
func (r *Renderer) drawShield(screen *ebiten.Image, s *component.Shield) {
	halfWidth := r.cfg.Shield.SpriteW * s.Scale / 2
	span := math.Atan2(halfWidth, s.OrbitRadius) * 180 / math.Pi
	thickness := float32(r.cfg.Shield.SpriteH * s.Scale / 2)

	from := s.Angle - span
	step := 2 * span / arcSegments
	px, py := utils.Polar(s.CenterX, s.CenterY, s.OrbitRadius, from)
	for i := 1; i <= arcSegments; i++ {
		x, y := utils.Polar(s.CenterX, s.CenterY, s.OrbitRadius, from+step*float64(i))
		vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), thickness, r.colors.Shield, true)
		px, py = x, y
	}
}

// drawHitboxes — отладочный вывод кругов коллизии
func (r *Renderer) drawHitboxes(screen *ebiten.Image, ecs *entity.ECS) {
	if ecs.Shield != nil {
		for _, c := range ecs.Shield.CollisionCircles() {
			vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), 1, r.colors.Hitbox, true)
		}
	}
	if ecs.Planet != nil {
		c := ecs.Planet.Circle()
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), 1, r.colors.Hitbox, true)
	}
	for id, ast := range ecs.Asteroids {
		if pos, ok := ecs.Positions[id]; ok {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(ast.Radius), 1, r.colors.Hitbox, true)
		}
	}
}

// DrawHUD выводит счёт и рекорд. Жизни и кнопку паузы рисует ui.
func (r *Renderer) DrawHUD(screen *ebiten.Image, session component.Session) {
	r.drawText(screen, fmt.Sprintf("Score: %d", session.Score), r.hudFace, hudMargin, hudMargin, r.colors.Text, 1, text.AlignStart)
	r.drawText(screen, fmt.Sprintf("High: %d", session.HighScore), r.hudFace, hudMargin, hudMargin+hudFontSize+4, r.colors.Text, 1, text.AlignStart)
}

// DrawTitle рисует титульный экран
func (r *Renderer) DrawTitle(screen *ebiten.Image, highScore int) {
	screen.Fill(r.colors.Background)
	cx := float64(r.cfg.Screen.Width) / 2
	cy := float64(r.cfg.Screen.Height) / 2

	r.drawText(screen, "SARIAN", r.titleFace, cx, cy-80, r.colors.Shield, 1, text.AlignCenter)
	r.drawText(screen, "Press SPACE to start", r.hudFace, cx, cy, r.colors.Text, 1, text.AlignCenter)
	r.drawText(screen, "LEFT / RIGHT rotate the shield, P pauses, ESC quits", r.hudFace, cx, cy+30, r.colors.Text, 0.7, text.AlignCenter)
	if highScore > 0 {
		r.drawText(screen, fmt.Sprintf("High score: %d", highScore), r.hudFace, cx, cy+80, r.colors.PlusOne, 1, text.AlignCenter)
	}
}

// DrawPause затемняет экран поверх кадра и пишет PAUSED
func (r *Renderer) DrawPause(screen *ebiten.Image) {
	w := float32(r.cfg.Screen.Width)
	h := float32(r.cfg.Screen.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, r.colors.Overlay, false)
	r.drawText(screen, "PAUSED", r.titleFace, float64(w)/2, float64(h)/2-titleFontSize/2, r.colors.Text, 1, text.AlignCenter)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color, alpha float32, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}
