package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
)

type BloodParams struct {
	Position common.Vec3
	Scale    float64
	Rotation float64
	Lifetime time.Duration
	Blobs    []common.Vec3
}

func NewBloodSplash(w *ecs.World, p BloodParams) (ecs.Entity, error) {
	splash := ecs.CreateEntity(w)
	if err := ecs.Add(w, splash, component.NameComponent.Kind(), &component.Name{Value: "blood_splash"}); err != nil {
		return 0, fmt.Errorf("blood: add name: %w", err)
	}
	if err := ecs.Add(w, splash, component.TransformComponent.Kind(), &component.Transform{
		Position: p.Position,
		Yaw:      p.Rotation,
		Scale:    p.Scale,
	}); err != nil {
		return 0, fmt.Errorf("blood: add transform: %w", err)
	}
	if err := ecs.Add(w, splash, component.BloodSplashComponent.Kind(), &component.BloodSplash{
		Timer:    component.NewTimer(p.Lifetime, component.TimerOnce),
		Scale:    p.Scale,
		Rotation: p.Rotation,
		Alpha:    1,
		Blobs:    p.Blobs,
	}); err != nil {
		return 0, fmt.Errorf("blood: add splash component: %w", err)
	}
	return splash, nil
}
