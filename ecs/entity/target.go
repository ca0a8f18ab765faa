package entity

import (
	"fmt"

	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/prefabs"
)

const defaultHitRadius = 0.2

// NewTarget spawns a walker at the spec's spawn point. health and speed come
// from the current wave; zero falls back to the spec.
func NewTarget(w *ecs.World, spec *prefabs.TargetSpec, health, speed float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("target: nil spec")
	}
	if health <= 0 {
		health = spec.Health
	}
	if speed <= 0 {
		speed = spec.Speed
	}
	radius := spec.HitRadius
	if radius <= 0 {
		radius = defaultHitRadius
	}
	scale := spec.Scale
	if scale <= 0 {
		scale = 1
	}

	target := ecs.CreateEntity(w)
	if err := ecs.Add(w, target, component.NameComponent.Kind(), &component.Name{Value: nameOr(spec.Name, "target")}); err != nil {
		return 0, fmt.Errorf("target: add name: %w", err)
	}
	if err := ecs.Add(w, target, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Spawn.Vec3(),
		Yaw:      spec.Yaw,
		Scale:    scale,
	}); err != nil {
		return 0, fmt.Errorf("target: add transform: %w", err)
	}
	if err := ecs.Add(w, target, component.TargetComponent.Kind(), &component.Target{
		Speed:     speed,
		Health:    health,
		MaxHealth: health,
		HitRadius: radius,
	}); err != nil {
		return 0, fmt.Errorf("target: add target component: %w", err)
	}
	if err := ecs.Add(w, target, component.HealthBarComponent.Kind(), &component.HealthBar{MaxHealth: health, Fill: 1}); err != nil {
		return 0, fmt.Errorf("target: add health bar: %w", err)
	}
	if err := ecs.Add(w, target, component.WalkAnimationComponent.Kind(), &component.WalkAnimation{
		Rate:      spec.Walk.Rate,
		Amplitude: spec.Walk.Amplitude,
	}); err != nil {
		return 0, fmt.Errorf("target: add walk animation: %w", err)
	}
	return target, nil
}
