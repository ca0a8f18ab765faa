package app

import (
	"fmt"

	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/entity"
	"github.com/milk9111/towerdefense/ecs/resource"
	"github.com/milk9111/towerdefense/ecs/system"
	"go.uber.org/zap"
)

// WorldPlugin spawns the ground and light, seeds the initial towers each
// session and resets the battlefield whenever the menu is entered.
type WorldPlugin struct{}

func (WorldPlugin) Build(a *App) error {
	specs, err := a.specs()
	if err != nil {
		return err
	}
	log := a.Log.Named("world")

	if lives := specs.World.Lives; lives > 0 {
		if session, ok := ecs.Resource(a.World, resource.SessionResource); ok {
			session.StartLives = lives
			session.Lives = lives
		}
	}

	a.Scheduler.Add(ecs.Startup, ecs.SystemFunc(func(w *ecs.World) {
		if _, err := entity.NewGround(w, specs.World.Ground); err != nil {
			log.Error("spawn ground", zap.Error(err))
		}
		if _, err := entity.NewLight(w, specs.World.Light); err != nil {
			log.Error("spawn light", zap.Error(err))
		}
	}))
	a.Scheduler.Add(ecs.Update, system.NewInitialTowersSystem(log), resource.InApp(resource.AppInGame))

	app, ok := ecs.Resource(a.World, resource.AppStateResource)
	if !ok {
		return fmt.Errorf("world: app state missing, add CorePlugin first")
	}
	app.OnEnter(resource.AppMenu, system.NewSessionResetSystem(log))

	a.Renderer.Add(system.NewRenderSystem())
	return nil
}

// CameraPlugin spawns the controllable camera and flies it outside the menu.
type CameraPlugin struct{}

func (CameraPlugin) Build(a *App) error {
	specs, err := a.specs()
	if err != nil {
		return err
	}
	log := a.Log.Named("camera")
	spec := specs.Camera

	a.Scheduler.Add(ecs.Startup, ecs.SystemFunc(func(w *ecs.World) {
		if _, err := entity.NewCamera(w, spec); err != nil {
			log.Error("spawn camera", zap.Error(err))
		}
	}))
	a.Scheduler.Add(ecs.Update,
		system.NewCameraControlSystem(spec.MoveSpeed, spec.ZoomSpeed, spec.Sensitivity),
		resource.NotInApp(resource.AppMenu),
	)
	return nil
}
