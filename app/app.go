package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/towerdefense/config"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/system"
	"go.uber.org/zap"
)

// Plugin registers resources and systems on an App.
type Plugin interface {
	Build(a *App) error
}

// PluginFunc adapts a function to Plugin.
type PluginFunc func(a *App) error

func (f PluginFunc) Build(a *App) error {
	return f(a)
}

// App owns the world and the schedules plugins register into.
type App struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Renderer  *ecs.Renderer
	Log       *zap.Logger
	Config    *config.Config
	Rand      *rand.Rand

	// Sounds plays PlaySound events; nil keeps the game silent.
	Sounds system.SoundPlayer

	waves   *system.WaveDirectorSystem
	closers []func() error
	exit    bool
}

func New(cfg *config.Config, log *zap.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	seed := cfg.Game.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	return &App{
		World:     w,
		Scheduler: ecs.NewScheduler(),
		Renderer:  &ecs.Renderer{},
		Log:       log,
		Config:    cfg,
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

// AddPlugins builds plugins in order. Update systems run in registration order,
// so plugin order is frame order.
func (a *App) AddPlugins(plugins ...Plugin) error {
	for _, p := range plugins {
		if p == nil {
			continue
		}
		if err := p.Build(a); err != nil {
			return fmt.Errorf("app: build plugin %T: %w", p, err)
		}
	}
	return nil
}

// OnClose registers cleanup run by Close in reverse order.
func (a *App) OnClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// RequestExit asks the host loop to stop after this frame.
func (a *App) RequestExit() {
	a.exit = true
}

func (a *App) ExitRequested() bool {
	return a.exit
}

func (a *App) Update() {
	a.Scheduler.Update(a.World)
}

func (a *App) Draw(screen *ebiten.Image) {
	a.Renderer.Draw(a.World, screen)
}
