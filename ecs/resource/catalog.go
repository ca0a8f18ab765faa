package resource

import (
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/prefabs"
)

var TowerDBResource = component.NewResource[prefabs.TowerDB]()

// Specs carries the prefab specs systems read after startup.
type Specs struct {
	Camera *prefabs.CameraSpec
	Target *prefabs.TargetSpec
	Blood  *prefabs.BloodSpec
	World  *prefabs.WorldSpec
}

var SpecsResource = component.NewResource[Specs]()
