// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/image/colornames"
)

// ShieldVariant — форма хитбокса щита
type ShieldVariant string

const (
	ShieldSingle ShieldVariant = "single" // один круг на весь спрайт
	ShieldTriple ShieldVariant = "triple" // три круга вдоль дуги
)

// LocalCircle — круг коллизии в локальной (немасштабированной) системе координат спрайта щита
type LocalCircle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// MoonSlot — слот орбиты декоративной луны
type MoonSlot struct {
	Radius     float64 `json:"radius"`      // радиус орбиты
	StartAngle float64 `json:"start_angle"` // градусы
	Speed      float64 `json:"speed"`       // градусов за тик
}

type ScreenConfig struct {
	Width, Height int
	TPS           int
	FrameMs       float64 // номинальная длительность кадра
	MaxFrameMs    float64 // ограничение дельты, чтобы подвисание окна не телепортировало астероиды
}

type PlanetConfig struct {
	DisplaySize float64
}

// Radius — радиус коллизии планеты, половина отображаемого размера
func (p PlanetConfig) Radius() float64 {
	return p.DisplaySize / 2
}

type ShieldConfig struct {
	OrbitRadius float64
	StartAngle  float64 // градусы
	RotateSpeed float64 // градусов за номинальный тик
	Scale       float64 // масштаб спрайта
	SpriteW     float64
	SpriteH     float64
	Variant     ShieldVariant
	Circles     map[ShieldVariant][]LocalCircle
}

// LocalCircles возвращает локальную геометрию выбранного варианта щита
func (s ShieldConfig) LocalCircles() []LocalCircle {
	return s.Circles[s.Variant]
}

type AsteroidConfig struct {
	Speed      float64 // единиц за номинальный тик
	SpriteSize float64
	CullMargin float64
}

// Radius — радиус коллизии астероида (половина ширины спрайта, целочисленно)
func (a AsteroidConfig) Radius() float64 {
	return float64(int(a.SpriteSize) / 2)
}

type SpawnerConfig struct {
	IntervalMs float64
	Distance   float64
}

type MoonConfig struct {
	Slots    []MoonSlot
	MinScale float64
	MaxScale float64
	BaseSize float64
}

type EffectsConfig struct {
	DustLifetime    int
	PlusOneLifetime int
	PlusOneDrift    float64 // по Y за тик, отрицательное — вверх
}

type SessionConfig struct {
	Lives int
}

// Config — неизменяемая конфигурация игры, передаётся системам при создании
type Config struct {
	Screen   ScreenConfig
	Planet   PlanetConfig
	Shield   ShieldConfig
	Asteroid AsteroidConfig
	Spawner  SpawnerConfig
	Moons    MoonConfig
	Effects  EffectsConfig
	Session  SessionConfig
	Seed     int64 // 0 — сид от текущего времени
}

// Default возвращает конфигурацию по умолчанию
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:      800,
			Height:     600,
			TPS:        60,
			FrameMs:    16.67,
			MaxFrameMs: 100,
		},
		Planet: PlanetConfig{DisplaySize: 120},
		Shield: ShieldConfig{
			OrbitRadius: 90,
			StartAngle:  -90,
			RotateSpeed: 4,
			Scale:       0.5,
			SpriteW:     160,
			SpriteH:     60,
			Variant:     ShieldTriple,
			Circles: map[ShieldVariant][]LocalCircle{
				ShieldSingle: {
					{X: 0, Y: 0, Radius: 80},
				},
				ShieldTriple: {
					{X: 0, Y: -10, Radius: 30},
					{X: -55, Y: 8, Radius: 26},
					{X: 55, Y: 8, Radius: 26},
				},
			},
		},
		Asteroid: AsteroidConfig{
			Speed:      2,
			SpriteSize: 32,
			CullMargin: 200,
		},
		Spawner: SpawnerConfig{
			IntervalMs: 1000,
			Distance:   600,
		},
		Moons: MoonConfig{
			Slots: []MoonSlot{
				{Radius: 140, StartAngle: 0, Speed: 0.6},
				{Radius: 170, StartAngle: 72, Speed: 0.45},
				{Radius: 200, StartAngle: 144, Speed: 0.35},
				{Radius: 230, StartAngle: 216, Speed: 0.25},
				{Radius: 260, StartAngle: 288, Speed: 0.2},
			},
			MinScale: 0.3,
			MaxScale: 0.6,
			BaseSize: 24,
		},
		Effects: EffectsConfig{
			DustLifetime:    30,
			PlusOneLifetime: 40,
			PlusOneDrift:    -1,
		},
		Session: SessionConfig{Lives: 3},
	}
}

// finite: NaN и ±Inf проходят проверки вида x <= 0, их отсекаем отдельно
func finite(v ...float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Validate проверяет, что размеры и интервалы положительны и конечны
func (c Config) Validate() error {
	switch {
	case !finite(c.Screen.FrameMs, c.Screen.MaxFrameMs, c.Spawner.IntervalMs, c.Spawner.Distance,
		c.Asteroid.Speed, c.Asteroid.SpriteSize, c.Asteroid.CullMargin, c.Shield.RotateSpeed,
		c.Shield.OrbitRadius, c.Shield.Scale, c.Moons.MinScale, c.Moons.MaxScale, c.Effects.PlusOneDrift):
		return errors.New("config values must be finite numbers")
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return errors.New("screen size must be positive")
	case c.Screen.FrameMs <= 0:
		return errors.New("frame duration must be positive")
	case c.Spawner.IntervalMs <= 0:
		return errors.New("spawn interval must be positive")
	case c.Asteroid.Speed <= 0:
		return errors.New("asteroid speed must be positive")
	case c.Session.Lives <= 0:
		return errors.New("lives must be positive")
	case c.Effects.DustLifetime <= 0 || c.Effects.PlusOneLifetime <= 0:
		return errors.New("effect lifetimes must be positive")
	case c.Moons.MaxScale < c.Moons.MinScale:
		return errors.New("moon scale range is inverted")
	}
	if len(c.Shield.LocalCircles()) == 0 {
		return fmt.Errorf("unknown shield variant %q", c.Shield.Variant)
	}
	return nil
}

// Load читает необязательный .env файл и применяет переопределения SARIAN_* поверх Default.
func Load(envPath string) (Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envPath, err)
		}
	}

	cfg := Default()

	if v, ok := os.LookupEnv("SARIAN_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SARIAN_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv("SARIAN_SPAWN_INTERVAL_MS"); ok {
		ms, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SARIAN_SPAWN_INTERVAL_MS: %w", err)
		}
		cfg.Spawner.IntervalMs = ms
	}
	if v, ok := os.LookupEnv("SARIAN_ASTEROID_SPEED"); ok {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SARIAN_ASTEROID_SPEED: %w", err)
		}
		cfg.Asteroid.Speed = speed
	}
	if v, ok := os.LookupEnv("SARIAN_LIVES"); ok {
		lives, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SARIAN_LIVES: %w", err)
		}
		cfg.Session.Lives = lives
	}
	if v, ok := os.LookupEnv("SARIAN_SHIELD_VARIANT"); ok {
		cfg.Shield.Variant = ShieldVariant(v)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	log.Printf("Config loaded: seed=%d spawn=%.0fms speed=%.2f lives=%d shield=%s",
		cfg.Seed, cfg.Spawner.IntervalMs, cfg.Asteroid.Speed, cfg.Session.Lives, cfg.Shield.Variant)
	return cfg, nil
}

var (
	BackgroundColor = color.RGBA{10, 10, 25, 255}
	PlanetColor     = colornames.Steelblue
	PlanetRimColor  = colornames.Lightskyblue
	ShieldColor     = colornames.Gold
	AsteroidColor   = colornames.Rosybrown
	MoonColor       = colornames.Lightgray
	DustColor       = colornames.Sandybrown
	PlusOneColor    = colornames.Palegreen
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	LivesColor      = colornames.Tomato
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
	HitboxColor     = color.RGBA{255, 0, 0, 160}
)
