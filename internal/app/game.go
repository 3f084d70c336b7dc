// internal/app/game.go
package app

import (
	"log"

	"sarian/internal/component"
	"sarian/internal/config"
	"sarian/internal/entity"
	"sarian/internal/event"
	"sarian/internal/system"
	"sarian/internal/utils"
)

// Input — дискретные сигналы ввода за один тик
type Input struct {
	RotateLeft  bool
	RotateRight bool
	TogglePause bool
}

// direction переводит ввод в знак поворота щита
func (in Input) direction() int {
	dir := 0
	if in.RotateLeft {
		dir--
	}
	if in.RotateRight {
		dir++
	}
	return dir
}

// Frame — всё, что оболочка передаёт симуляции за тик
type Frame struct {
	ElapsedMs float64 // реальное время с прошлого тика
	Input     Input
}

// Game holds the simulation state and systems of one play session.
type Game struct {
	Config             config.Config
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	MovementSystem     *system.MovementSystem
	SpawnerSystem      *system.SpawnerSystem
	ShieldSystem       *system.ShieldSystem
	OrbitSystem        *system.OrbitSystem
	VisualEffectSystem *system.VisualEffectSystem
	CollisionSystem    *system.CollisionSystem
	SessionSystem      *system.SessionSystem

	resetPending bool
}

// NewGame initializes a new game instance.
func NewGame(cfg config.Config) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)

	cx := float64(cfg.Screen.Width) / 2
	cy := float64(cfg.Screen.Height) / 2
	ecs.Planet = &component.Planet{
		X:           cx,
		Y:           cy,
		Radius:      cfg.Planet.Radius(),
		DisplaySize: cfg.Planet.DisplaySize,
	}
	ecs.Shield = component.NewShield(cx, cy, cfg.Shield)

	g := &Game{
		Config:          cfg,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		MovementSystem:  system.NewMovementSystem(ecs, cfg),
		SpawnerSystem:   system.NewSpawnerSystem(ecs, cfg, rng),
		ShieldSystem:    system.NewShieldSystem(ecs, cfg),
		OrbitSystem:     system.NewOrbitSystem(ecs, cfg, rng),
	}
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, cfg)
	g.CollisionSystem = system.NewCollisionSystem(ecs, eventDispatcher, g.VisualEffectSystem)
	g.SessionSystem = system.NewSessionSystem(ecs, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.LivesExhausted, listener)

	g.NewSession()
	return g
}

// NewSession начинает новую сессию из меню. Рекорд живёт до конца процесса.
func (g *Game) NewSession() {
	g.ECS.Session.Restarts = 0
	g.restart()
}

// Reset — автоматический рестарт после потери последней жизни
func (g *Game) Reset() {
	g.ECS.Session.Restarts++
	g.restart()
	log.Printf("Session reset #%d, high score %d", g.ECS.Session.Restarts, g.ECS.Session.HighScore)
}

// restart атомарно (в пределах тика) пересоздаёт всё, чем владеет сессия
func (g *Game) restart() {
	g.ECS.ClearTransient()
	g.ECS.Shield.ResetAngle()
	g.SessionSystem.Restart(g.Config.Session.Lives)
	g.SpawnerSystem.Reset()
	g.OrbitSystem.Populate()
	g.resetPending = false
}

// TogglePause переключает паузу. Сцены узнают о ней из события PauseToggled.
func (g *Game) TogglePause() {
	g.ECS.Session.Paused = !g.ECS.Session.Paused
	g.EventDispatcher.Dispatch(event.Event{Type: event.PauseToggled, Data: g.ECS.Session.Paused})
}

// IsPaused сообщает, стоит ли симуляция на паузе
func (g *Game) IsPaused() bool {
	return g.ECS.Session.Paused
}

// Session возвращает копию состояния сессии для HUD
func (g *Game) Session() component.Session {
	return *g.ECS.Session
}

// Update progresses the game state by one tick.
func (g *Game) Update(frame Frame) {
	if frame.Input.TogglePause {
		g.TogglePause()
	}
	if g.ECS.Session.Paused {
		return
	}

	elapsed := frame.ElapsedMs
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > g.Config.Screen.MaxFrameMs {
		elapsed = g.Config.Screen.MaxFrameMs
	}
	dtTicks := elapsed / g.Config.Screen.FrameMs

	g.ECS.GameTime += elapsed
	g.ECS.Tick++

	g.ShieldSystem.Update(frame.Input.direction(), dtTicks)
	g.SpawnerSystem.Update(elapsed)
	g.MovementSystem.Update(dtTicks)
	g.OrbitSystem.Update()
	g.VisualEffectSystem.Update()
	g.CollisionSystem.Update()

	if g.resetPending {
		g.Reset()
	}
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LivesExhausted:
		// Рестарт откладывается до конца тика, чтобы никто не увидел полусброшенное состояние
		l.game.resetPending = true
	}
}
