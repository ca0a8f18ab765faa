package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/prefabs"
)

// NewCamera spawns the controllable camera described by spec, aimed at its look_at point.
func NewCamera(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("camera: nil spec")
	}

	pos := spec.Position.Vec3()
	yaw, pitch := common.LookAt(pos, spec.LookAt.Vec3())
	fov := math.Pi / 3
	if spec.FOVDegrees > 0 {
		fov = spec.FOVDegrees * math.Pi / 180
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.NameComponent.Kind(), &component.Name{Value: nameOr(spec.Name, "camera")}); err != nil {
		return 0, fmt.Errorf("camera: add name: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{Yaw: yaw, Pitch: pitch, FOV: fov}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := ecs.Add(w, camera, component.ControllableCameraComponent.Kind(), &component.ControllableCamera{}); err != nil {
		return 0, fmt.Errorf("camera: add controllable tag: %w", err)
	}

	return camera, nil
}

// CameraView builds the projection for the first camera in the world.
func CameraView(w *ecs.World, width, height float64) (common.View, bool) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return common.View{}, false
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.View{}, false
	}
	return common.View{
		Position: transform.Position,
		Yaw:      cam.Yaw,
		Pitch:    cam.Pitch,
		FOV:      cam.FOV,
		Width:    width,
		Height:   height,
	}, true
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
