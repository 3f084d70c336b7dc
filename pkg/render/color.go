// pkg/render/color.go
package render

import (
	"image/color"

	"sarian/internal/config"
)

// Palette holds all the colors the renderer needs.
type Palette struct {
	Background color.Color
	Planet     color.Color
	PlanetRim  color.Color
	Shield     color.Color
	Asteroid   color.Color
	Moon       color.Color
	Dust       color.Color
	PlusOne    color.Color
	Text       color.Color
	Lives      color.Color
	Overlay    color.Color
	Hitbox     color.Color
}

// DefaultPalette собирает палитру из конфига
func DefaultPalette() Palette {
	return Palette{
		Background: config.BackgroundColor,
		Planet:     config.PlanetColor,
		PlanetRim:  config.PlanetRimColor,
		Shield:     config.ShieldColor,
		Asteroid:   config.AsteroidColor,
		Moon:       config.MoonColor,
		Dust:       config.DustColor,
		PlusOne:    config.PlusOneColor,
		Text:       config.TextLightColor,
		Lives:      config.LivesColor,
		Overlay:    config.PauseOverlay,
		Hitbox:     config.HitboxColor,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * 0.5),
		G: uint8(float64(g>>8) * 0.5),
		B: uint8(float64(b>>8) * 0.5),
		A: uint8(a >> 8),
	}
}
