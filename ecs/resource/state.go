package resource

import (
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
)

type AppState int

const (
	AppMenu AppState = iota
	AppInGame
	AppPaused
)

func (s AppState) String() string {
	switch s {
	case AppMenu:
		return "menu"
	case AppInGame:
		return "in_game"
	case AppPaused:
		return "paused"
	}
	return "unknown"
}

type PlayerState int

const (
	PlayerNone PlayerState = iota
	PlayerBuild
)

func (s PlayerState) String() string {
	if s == PlayerBuild {
		return "build"
	}
	return "none"
}

var (
	AppStateResource    = component.NewResource[ecs.StateMachine[AppState]]()
	PlayerStateResource = component.NewResource[ecs.StateMachine[PlayerState]]()
)

func InApp(s AppState) ecs.Condition {
	return ecs.InState(AppStateResource, s)
}

func NotInApp(s AppState) ecs.Condition {
	return ecs.Not(InApp(s))
}

func InPlayer(s PlayerState) ecs.Condition {
	return ecs.InState(PlayerStateResource, s)
}
