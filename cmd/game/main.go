// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"sarian/internal/app"
	"sarian/internal/config"
	"sarian/internal/defs"
	"sarian/internal/state"
	"sarian/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	cfg            config.Config
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if maxDelta := a.cfg.Screen.MaxFrameMs / 1000; deltaTime > maxDelta {
		deltaTime = maxDelta
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Screen.Width, a.cfg.Screen.Height
}

func main() {
	envPath := flag.String("env", ".env", "path to optional .env file with SARIAN_* overrides")
	layoutPath := flag.String("layout", "", "path to JSON with shield circles and moon slots")
	skipTitle := flag.Bool("play", false, "start straight in the game scene")
	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		log.Fatal(err)
	}
	if *layoutPath != "" {
		layout, err := defs.LoadLayout(*layoutPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = layout.Apply(cfg)
		if err := cfg.Validate(); err != nil {
			log.Fatalf("invalid layout: %v", err)
		}
	}

	renderer, err := render.NewRenderer(cfg, render.DefaultPalette())
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(cfg)
	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipTitle {
		sm.SetState(state.NewMainState(sm, game, renderer))
	} else {
		sm.SetState(state.NewTitleState(sm, game, renderer))
	}

	appGame := &AppGame{
		cfg:            cfg,
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("Sarian")
	ebiten.SetTPS(cfg.Screen.TPS)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
