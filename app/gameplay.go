package app

import (
	"fmt"
	"time"

	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/resource"
	"github.com/milk9111/towerdefense/ecs/system"
	"github.com/milk9111/towerdefense/prefabs"
)

// killSound plays when a projectile kills a target.
const killSound = "splat"

var inGame = resource.InApp(resource.AppInGame)

// TargetPlugin runs the wave director and moves, leaks and animates targets.
type TargetPlugin struct{}

func (TargetPlugin) Build(a *App) error {
	specs, err := a.specs()
	if err != nil {
		return err
	}
	src, err := prefabs.LoadScript(a.Config.Game.WaveScript)
	if err != nil {
		return fmt.Errorf("target: load wave script: %w", err)
	}
	script, err := system.NewWaveScript(src, specs.Target.Health, specs.Target.Speed)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	director := &resource.WaveDirector{
		Intermission: component.NewTimer(time.Duration(specs.World.Intermission*float64(time.Second)), component.TimerOnce),
	}
	director.Reset()
	ecs.InsertResource(a.World, resource.WaveDirectorResource, director)

	log := a.Log.Named("target")
	a.waves = system.NewWaveDirectorSystem(script, log)
	a.Scheduler.Add(ecs.Update, a.waves, inGame)
	a.Scheduler.Add(ecs.Update, system.NewTargetMoveSystem(), inGame)
	a.Scheduler.Add(ecs.Update, system.NewTargetLeakSystem(log), inGame)
	a.Scheduler.Add(ecs.Update, system.NewTargetPhysicsSyncSystem(), inGame)
	a.Scheduler.Add(ecs.Update, system.NewWalkAnimationSystem(), inGame)
	a.Scheduler.Add(ecs.PostUpdate, system.NewHealthBarSystem())
	return nil
}

// TowerPlugin fires towers at the nearest target.
type TowerPlugin struct{}

func (TowerPlugin) Build(a *App) error {
	a.Scheduler.Add(ecs.Update, system.NewTowerFireSystem(a.Log.Named("tower")), inGame)
	return nil
}

// ProjectilePlugin flies projectiles and resolves hits.
type ProjectilePlugin struct{}

func (ProjectilePlugin) Build(a *App) error {
	a.Scheduler.Add(ecs.Update, system.NewProjectileSystem(a.Log.Named("projectile"), killSound), inGame)
	return nil
}

// BloodPlugin turns kills into fading decals. Spawning is not gated so a kill
// on the frame before a pause still leaves its decal.
type BloodPlugin struct{}

func (BloodPlugin) Build(a *App) error {
	a.Scheduler.Add(ecs.Update, system.NewBloodSpawnSystem(a.Rand, a.Log.Named("blood")))
	a.Scheduler.Add(ecs.Update, system.NewBloodFadeSystem(), inGame)
	return nil
}

// BuildPlugin places towers from the build panel selection while in build mode.
type BuildPlugin struct{}

func (BuildPlugin) Build(a *App) error {
	building := resource.InPlayer(resource.PlayerBuild)
	a.Scheduler.Add(ecs.Update, system.NewBuildPlacementSystem(a.Log.Named("build")), inGame, building)
	a.Renderer.Add(system.NewBuildPreviewSystem(), inGame, building)
	return nil
}

// DebugPlugin draws the inspector overlay when debug is enabled.
type DebugPlugin struct{}

func (DebugPlugin) Build(a *App) error {
	if !a.Config.Game.Debug {
		return nil
	}
	a.Renderer.Add(system.NewDebugOverlaySystem())
	return nil
}

// DefaultPlugins returns the gameplay plugins in frame order: waves spawn,
// targets move and leak, towers fire, projectiles hit, then blood appears.
func DefaultPlugins() []Plugin {
	return []Plugin{
		CorePlugin{},
		DataLoadPlugin{},
		WorldPlugin{},
		CameraPlugin{},
		TargetPlugin{},
		TowerPlugin{},
		ProjectilePlugin{},
		BloodPlugin{},
		BuildPlugin{},
		DebugPlugin{},
	}
}
