package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/resource"
)

const (
	defaultCameraSpeed       = 5.0
	defaultCameraZoomSpeed   = 30.0
	defaultCameraSensitivity = 0.005
)

// CameraControlSystem flies controllable cameras: WASD on the view plane,
// Space/Shift vertically, wheel along the view direction, middle drag to look.
type CameraControlSystem struct {
	speed       float64
	zoomSpeed   float64
	sensitivity float64
}

func NewCameraControlSystem(speed, zoomSpeed, sensitivity float64) *CameraControlSystem {
	if speed <= 0 {
		speed = defaultCameraSpeed
	}
	if zoomSpeed <= 0 {
		zoomSpeed = defaultCameraZoomSpeed
	}
	if sensitivity <= 0 {
		sensitivity = defaultCameraSensitivity
	}
	return &CameraControlSystem{speed: speed, zoomSpeed: zoomSpeed, sensitivity: sensitivity}
}

func (s *CameraControlSystem) Update(w *ecs.World) {
	in, ok := ecs.Resource(w, resource.InputResource)
	if !ok {
		return
	}
	dt := deltaSeconds(w)

	ecs.ForEach3(w,
		component.ControllableCameraComponent.Kind(),
		component.CameraComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.ControllableCamera, cam *component.Camera, transform *component.Transform) {
			view := common.View{Yaw: cam.Yaw, Pitch: cam.Pitch}
			forward := view.Forward()
			right := view.Right()

			var move common.Vec3
			if in.Pressed(ebiten.KeyW) {
				move = move.Add(forward)
			}
			if in.Pressed(ebiten.KeyS) {
				move = move.Sub(forward)
			}
			if in.Pressed(ebiten.KeyD) {
				move = move.Add(right)
			}
			if in.Pressed(ebiten.KeyA) {
				move = move.Sub(right)
			}
			if in.Pressed(ebiten.KeySpace) {
				move = move.Add(common.Vec3Up)
			}
			if in.Pressed(ebiten.KeyShift) {
				move = move.Sub(common.Vec3Up)
			}
			if !move.IsZero() {
				transform.Position = transform.Position.Add(move.Normalize().Scale(s.speed * dt))
			}

			if in.WheelY != 0 {
				transform.Position = transform.Position.Add(forward.Scale(in.WheelY * s.zoomSpeed * dt))
			}

			if in.MousePressed(ebiten.MouseButtonMiddle) {
				cam.Yaw -= in.MotionX * s.sensitivity
				cam.Pitch = common.ClampPitch(cam.Pitch - in.MotionY*s.sensitivity)
			}
		})
}
