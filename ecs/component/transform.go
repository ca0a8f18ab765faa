package component

import "github.com/milk9111/towerdefense/common"

// Transform places an entity in world space. Yaw rotates around +Y; yaw 0 faces -Z.
type Transform struct {
	Position common.Vec3
	Yaw      float64
	Scale    float64
}

var TransformComponent = NewComponent[Transform]()
