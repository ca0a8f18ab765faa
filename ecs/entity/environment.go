package entity

import (
	"fmt"

	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/prefabs"
)

func NewGround(w *ecs.World, spec prefabs.GroundSpec) (ecs.Entity, error) {
	size := spec.Size
	if size <= 0 {
		size = 20
	}
	subdivisions := spec.Subdivisions
	if subdivisions <= 0 {
		subdivisions = 20
	}

	ground := ecs.CreateEntity(w)
	if err := ecs.Add(w, ground, component.NameComponent.Kind(), &component.Name{Value: "ground"}); err != nil {
		return 0, fmt.Errorf("ground: add name: %w", err)
	}
	if err := ecs.Add(w, ground, component.TransformComponent.Kind(), &component.Transform{Scale: 1}); err != nil {
		return 0, fmt.Errorf("ground: add transform: %w", err)
	}
	if err := ecs.Add(w, ground, component.GroundComponent.Kind(), &component.Ground{Size: size, Subdivisions: subdivisions}); err != nil {
		return 0, fmt.Errorf("ground: add ground component: %w", err)
	}
	return ground, nil
}

func NewLight(w *ecs.World, spec prefabs.LightSpec) (ecs.Entity, error) {
	intensity := spec.Intensity
	if intensity <= 0 {
		intensity = 1
	}
	light := ecs.CreateEntity(w)
	if err := ecs.Add(w, light, component.NameComponent.Kind(), &component.Name{Value: "light"}); err != nil {
		return 0, fmt.Errorf("light: add name: %w", err)
	}
	if err := ecs.Add(w, light, component.LightComponent.Kind(), &component.Light{Intensity: intensity}); err != nil {
		return 0, fmt.Errorf("light: add light component: %w", err)
	}
	return light, nil
}
