package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/resource"
	"go.uber.org/zap"
)

// StateInputSystem maps Esc, Space and B to app and player state transitions.
type StateInputSystem struct {
	log *zap.Logger
}

func NewStateInputSystem(log *zap.Logger) *StateInputSystem {
	return &StateInputSystem{log: log}
}

func (s *StateInputSystem) Update(w *ecs.World) {
	in, ok := ecs.Resource(w, resource.InputResource)
	if !ok {
		return
	}
	app, ok := ecs.Resource(w, resource.AppStateResource)
	if !ok {
		return
	}
	current := app.Current()

	switch {
	case in.JustPressed(ebiten.KeyEscape):
		if current != resource.AppMenu {
			app.Set(resource.AppMenu)
			s.log.Debug("state requested", zap.Stringer("from", current), zap.Stringer("to", resource.AppMenu))
		}
		return
	case in.JustPressed(ebiten.KeySpace):
		switch current {
		case resource.AppInGame:
			app.Set(resource.AppPaused)
		case resource.AppPaused:
			app.Set(resource.AppInGame)
		}
	}

	if current == resource.AppInGame && in.JustPressed(ebiten.KeyB) {
		player, ok := ecs.Resource(w, resource.PlayerStateResource)
		if !ok {
			return
		}
		if player.Current() == resource.PlayerBuild {
			player.Set(resource.PlayerNone)
		} else {
			player.Set(resource.PlayerBuild)
		}
	}
}
