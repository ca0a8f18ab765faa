package app

import (
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/resource"
	"github.com/milk9111/towerdefense/ecs/system"
)

// CorePlugin provides the clock, input, session and state machines, and plays sounds.
type CorePlugin struct{}

func (CorePlugin) Build(a *App) error {
	w := a.World
	ecs.InsertResource(w, resource.TimeResource, &resource.Time{})
	ecs.InsertResource(w, resource.InputResource, resource.NewInput())
	ecs.InsertResource(w, resource.SessionResource, resource.NewSession(a.Config.Game.Lives))

	initial := resource.AppMenu
	if a.Config.Game.SkipMenu {
		initial = resource.AppInGame
	}
	ecs.InsertResource(w, resource.AppStateResource, ecs.NewStateMachine(initial))
	ecs.InsertResource(w, resource.PlayerStateResource, ecs.NewStateMachine(resource.PlayerNone))

	log := a.Log.Named("core")
	a.Scheduler.Add(ecs.PreUpdate, system.NewTimeSystem(a.Config.Window.TPS))
	a.Scheduler.Add(ecs.PreUpdate, system.NewInputSystem())
	a.Scheduler.Add(ecs.PreUpdate, system.NewStateInputSystem(log))
	a.Scheduler.Add(ecs.PreUpdate, ecs.NewStateTransitionSystem(resource.AppStateResource))
	a.Scheduler.Add(ecs.PreUpdate, ecs.NewStateTransitionSystem(resource.PlayerStateResource))
	a.Scheduler.Add(ecs.PostUpdate, system.NewSoundSystem(a.Sounds, a.Log.Named("sound")))
	return nil
}
