package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
)

const ProjectileLifetime = 2 * time.Second

type ProjectileParams struct {
	Position  common.Vec3
	Direction common.Vec3
	Speed     float64
	Damage    float64
	Scale     float64
	Source    ecs.Entity
}

func NewProjectile(w *ecs.World, p ProjectileParams) (ecs.Entity, error) {
	projectile := ecs.CreateEntity(w)
	if err := ecs.Add(w, projectile, component.NameComponent.Kind(), &component.Name{Value: "projectile"}); err != nil {
		return 0, fmt.Errorf("projectile: add name: %w", err)
	}
	if err := ecs.Add(w, projectile, component.TransformComponent.Kind(), &component.Transform{
		Position: p.Position,
		Yaw:      common.YawTowards(p.Direction),
		Scale:    p.Scale,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add transform: %w", err)
	}
	if err := ecs.Add(w, projectile, component.ProjectileComponent.Kind(), &component.Projectile{
		Speed:     p.Speed,
		Direction: p.Direction.Normalize(),
		Damage:    p.Damage,
		LifeTimer: component.NewTimer(ProjectileLifetime, component.TimerOnce),
		Scale:     p.Scale,
		Source:    uint64(p.Source),
	}); err != nil {
		return 0, fmt.Errorf("projectile: add projectile component: %w", err)
	}
	return projectile, nil
}
