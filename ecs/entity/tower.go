package entity

import (
	"fmt"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/prefabs"
)

// NewTower spawns a catalog tower at pos. Placed towers are tagged so a session reset removes them.
func NewTower(w *ecs.World, def prefabs.TowerDef, pos common.Vec3, placed bool) (ecs.Entity, error) {
	tower := ecs.CreateEntity(w)
	if err := ecs.Add(w, tower, component.NameComponent.Kind(), &component.Name{Value: "tower:" + def.ID}); err != nil {
		return 0, fmt.Errorf("tower: add name: %w", err)
	}
	if err := ecs.Add(w, tower, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1}); err != nil {
		return 0, fmt.Errorf("tower: add transform: %w", err)
	}
	if err := ecs.Add(w, tower, component.TowerComponent.Kind(), &component.Tower{
		DefID:            def.ID,
		ShootingTimer:    component.TimerFromSeconds(def.FireInterval, component.TimerRepeating),
		ProjectileOffset: def.Offset,
	}); err != nil {
		return 0, fmt.Errorf("tower: add tower component: %w", err)
	}
	if placed {
		if err := ecs.Add(w, tower, component.PlacedComponent.Kind(), &component.Placed{}); err != nil {
			return 0, fmt.Errorf("tower: add placed tag: %w", err)
		}
	}
	return tower, nil
}
