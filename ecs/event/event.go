package event

import (
	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
)

// SpawnBlood asks for a blood decal at a ground position.
type SpawnBlood struct {
	Pos common.Vec3
}

type TargetKilled struct {
	Entity ecs.Entity
	Pos    common.Vec3
}

// TargetLeaked is sent when a target walks past the exit.
type TargetLeaked struct {
	Entity ecs.Entity
}

type PlaySound struct {
	Name   string
	Volume float64
}

type TowerPlaced struct {
	Entity ecs.Entity
	DefID  string
}

var (
	SpawnBloodEvent   = component.NewEvent[SpawnBlood]()
	TargetKilledEvent = component.NewEvent[TargetKilled]()
	TargetLeakedEvent = component.NewEvent[TargetLeaked]()
	PlaySoundEvent    = component.NewEvent[PlaySound]()
	TowerPlacedEvent  = component.NewEvent[TowerPlaced]()
)
