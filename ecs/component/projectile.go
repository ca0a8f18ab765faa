package component

import "github.com/milk9111/towerdefense/common"

type Projectile struct {
	Speed     float64
	Direction common.Vec3
	Damage    float64
	LifeTimer Timer
	Scale     float64
	// Source is the tower entity that fired (ecs.Entity is uint64).
	Source uint64
}

var ProjectileComponent = NewComponent[Projectile]()
