// internal/defs/layout.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"sarian/internal/config"
)

// Layout — геометрия, которую удобно править без пересборки:
// локальные круги вариантов щита и слоты орбит лун.
// Выбор варианта щита остаётся за config (SARIAN_SHIELD_VARIANT).
type Layout struct {
	Shield map[string][]config.LocalCircle `json:"shield"`
	Moons  []config.MoonSlot               `json:"moons"`
}

// LoadLayout reads the layout file.
func LoadLayout(path string) (*Layout, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	var layout Layout
	if err := json.Unmarshal(file, &layout); err != nil {
		return nil, fmt.Errorf("failed to unmarshal layout: %w", err)
	}

	for name, circles := range layout.Shield {
		for i, c := range circles {
			if c.Radius <= 0 {
				return nil, fmt.Errorf("shield variant %q circle %d: radius must be positive", name, i)
			}
		}
	}

	log.Printf("Loaded layout: %d shield variants, %d moon slots", len(layout.Shield), len(layout.Moons))
	return &layout, nil
}

// Apply переносит заданные в файле поля поверх конфига. Пустые поля не трогаются.
func (l *Layout) Apply(cfg config.Config) config.Config {
	if len(l.Shield) > 0 {
		circles := make(map[config.ShieldVariant][]config.LocalCircle, len(cfg.Shield.Circles)+len(l.Shield))
		for variant, local := range cfg.Shield.Circles {
			circles[variant] = local
		}
		for name, local := range l.Shield {
			circles[config.ShieldVariant(name)] = local
		}
		cfg.Shield.Circles = circles
	}
	if len(l.Moons) > 0 {
		cfg.Moons.Slots = append([]config.MoonSlot(nil), l.Moons...)
	}
	return cfg
}
