package system

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/resource"
)

func TestCameraControl(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(in *resource.Input)
		wantPos   common.Vec3
		wantYaw   float64
		wantPitch float64
	}{
		{"idle", func(*resource.Input) {}, common.Vec3Zero, 0, 0},
		{"forward", func(in *resource.Input) { in.Press(ebiten.KeyW) }, common.V3(0, 0, -5), 0, 0},
		{"diagonal_normalized", func(in *resource.Input) { in.Press(ebiten.KeyW, ebiten.KeyD) }, common.V3(5/math.Sqrt2, 0, -5/math.Sqrt2), 0, 0},
		{"opposites_cancel", func(in *resource.Input) { in.Press(ebiten.KeyA, ebiten.KeyD) }, common.Vec3Zero, 0, 0},
		{"rise", func(in *resource.Input) { in.Press(ebiten.KeySpace) }, common.V3(0, 5, 0), 0, 0},
		{"wheel_zoom", func(in *resource.Input) { in.WheelY = 1 }, common.V3(0, 0, -30), 0, 0},
		{"motion_without_middle", func(in *resource.Input) { in.MotionX, in.MotionY = 100, 100 }, common.Vec3Zero, 0, 0},
		{"middle_drag", func(in *resource.Input) {
			in.PressMouse(ebiten.MouseButtonMiddle)
			in.MotionX, in.MotionY = 100, -20
		}, common.Vec3Zero, -0.5, 0.1},
		{"pitch_clamped", func(in *resource.Input) {
			in.PressMouse(ebiten.MouseButtonMiddle)
			in.MotionY = 1e6
		}, common.Vec3Zero, 0, -89 * math.Pi / 180},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			e := ecs.CreateEntity(tw.World)
			transform := &component.Transform{Scale: 1}
			cam := &component.Camera{FOV: math.Pi / 3}
			for _, err := range []error{
				ecs.Add(tw.World, e, component.TransformComponent.Kind(), transform),
				ecs.Add(tw.World, e, component.CameraComponent.Kind(), cam),
				ecs.Add(tw.World, e, component.ControllableCameraComponent.Kind(), &component.ControllableCamera{}),
			} {
				if err != nil {
					t.Fatal(err)
				}
			}
			tc.setup(tw.input())

			tw.step(time.Second, NewCameraControlSystem(0, 0, 0))

			if !approxVec(transform.Position, tc.wantPos) {
				t.Fatalf("position %v, want %v", transform.Position, tc.wantPos)
			}
			if math.Abs(cam.Yaw-tc.wantYaw) > 1e-9 || math.Abs(cam.Pitch-tc.wantPitch) > 1e-9 {
				t.Fatalf("yaw/pitch %v/%v, want %v/%v", cam.Yaw, cam.Pitch, tc.wantYaw, tc.wantPitch)
			}
		})
	}
}
