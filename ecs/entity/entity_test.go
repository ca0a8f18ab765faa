package entity

import (
	"math"
	"testing"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/prefabs"
)

func TestNewCameraLooksAtOrigin(t *testing.T) {
	w := ecs.NewWorld()
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		t.Fatalf("camera spec: %v", err)
	}
	if _, err := NewCamera(w, spec); err != nil {
		t.Fatalf("new camera: %v", err)
	}

	view, ok := CameraView(w, 1280, 720)
	if !ok {
		t.Fatal("expected a camera view")
	}
	x, y, _, ok := view.Project(common.Vec3Zero)
	if !ok || math.Abs(x-640) > 1e-6 || math.Abs(y-360) > 1e-6 {
		t.Fatalf("origin should project to screen center, got (%v,%v) ok=%v", x, y, ok)
	}
	if math.Abs(view.FOV-math.Pi/3) > 1e-9 {
		t.Fatalf("expected 60 degree fov, got %v", view.FOV)
	}
}

func TestNewTowerTimerAndTag(t *testing.T) {
	w := ecs.NewWorld()
	def := prefabs.TowerDef{ID: "basic", FireInterval: 1.5, ProjectileSpeed: 2, Offset: common.V3(0, 0.6, 0)}

	tests := []struct {
		name   string
		placed bool
	}{
		{"initial", false},
		{"placed", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := NewTower(w, def, common.V3(1, 0, 2), tc.placed)
			if err != nil {
				t.Fatalf("new tower: %v", err)
			}
			tower, ok := ecs.Get(w, e, component.TowerComponent.Kind())
			if !ok {
				t.Fatal("missing tower component")
			}
			if tower.ShootingTimer.Mode != component.TimerRepeating || tower.ShootingTimer.Duration.Seconds() != 1.5 {
				t.Fatalf("unexpected timer %+v", tower.ShootingTimer)
			}
			if ecs.Has(w, e, component.PlacedComponent.Kind()) != tc.placed {
				t.Fatalf("placed tag mismatch")
			}
		})
	}
}

func TestNewTargetOverrides(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.TargetSpec{Spawn: prefabs.Vec3Spec{X: -2, Z: 2}, Yaw: math.Pi / 2, Scale: 0.15, Speed: 0.3, Health: 100}

	e, err := NewTarget(w, spec, 0, 0.6)
	if err != nil {
		t.Fatalf("new target: %v", err)
	}
	target, _ := ecs.Get(w, e, component.TargetComponent.Kind())
	if target.Health != 100 || target.MaxHealth != 100 || target.Speed != 0.6 || target.HitRadius != defaultHitRadius {
		t.Fatalf("unexpected target %+v", target)
	}
	bar, _ := ecs.Get(w, e, component.HealthBarComponent.Kind())
	if bar.Fill != 1 || bar.MaxHealth != 100 {
		t.Fatalf("unexpected health bar %+v", bar)
	}
	transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if transform.Position != common.V3(-2, 0, 2) || transform.Scale != 0.15 {
		t.Fatalf("unexpected transform %+v", transform)
	}
}

func TestNewProjectileNormalizesDirection(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewProjectile(w, ProjectileParams{Direction: common.V3(3, 0, 4), Speed: 2, Damage: 10, Scale: 0.05})
	if err != nil {
		t.Fatalf("new projectile: %v", err)
	}
	p, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if math.Abs(p.Direction.Length()-1) > 1e-9 {
		t.Fatalf("direction not normalized: %v", p.Direction)
	}
	if p.LifeTimer.Duration != ProjectileLifetime || p.LifeTimer.Mode != component.TimerOnce {
		t.Fatalf("unexpected life timer %+v", p.LifeTimer)
	}
}
