package system

import (
	"testing"
	"time"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/entity"
	"github.com/milk9111/towerdefense/ecs/event"
)

func spawnProjectile(t *testing.T, w *ecs.World, pos, dir common.Vec3, speed, damage float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewProjectile(w, entity.ProjectileParams{Position: pos, Direction: dir, Speed: speed, Damage: damage, Scale: 0.05})
	if err != nil {
		t.Fatalf("spawn projectile: %v", err)
	}
	return e
}

func TestProjectileMovesAndExpires(t *testing.T) {
	tw := newTestWorld(t)
	p := spawnProjectile(t, tw.World, common.V3(0, 1, 0), common.V3(2, 0, 0), 5, 10)
	sys := NewProjectileSystem(nop, "splat")

	tw.step(500*time.Millisecond, sys)
	transform, ok := ecs.Get(tw.World, p, component.TransformComponent.Kind())
	if !ok || !approxVec(transform.Position, common.V3(2.5, 1, 0)) {
		t.Fatalf("expected projectile at (2.5,1,0), got %v", transform)
	}

	tw.step(1400*time.Millisecond, sys)
	if !ecs.IsAlive(tw.World, p) {
		t.Fatal("projectile expired before its lifetime")
	}
	tw.step(100*time.Millisecond, sys)
	if ecs.IsAlive(tw.World, p) {
		t.Fatal("projectile outlived its lifetime")
	}
}

func TestProjectileHits(t *testing.T) {
	tests := []struct {
		name        string
		projectileY float64
		damage      float64
		targets     int
		wantHit     bool
		wantKill    bool
	}{
		{"wound", 0.3, 30, 1, true, false},
		{"kill", 0.3, 100, 1, true, true},
		{"above_head", 2, 100, 1, false, false},
		{"overlap_damages_one", 0.3, 30, 2, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			var targets []ecs.Entity
			for i := 0; i < tc.targets; i++ {
				targets = append(targets, spawnTargetAt(t, tw.World, common.V3(1, 0, 0), 100))
			}
			p := spawnProjectile(t, tw.World, common.V3(0.9, tc.projectileY, 0), common.V3(1, 0, 0), 1, tc.damage)

			tw.step(100*time.Millisecond, NewTargetPhysicsSyncSystem(), NewProjectileSystem(nop, "splat"))

			if ecs.IsAlive(tw.World, p) == tc.wantHit {
				t.Fatalf("projectile alive=%v, want hit=%v", ecs.IsAlive(tw.World, p), tc.wantHit)
			}

			lost := 0.0
			for _, e := range targets {
				target, ok := ecs.Get(tw.World, e, component.TargetComponent.Kind())
				if !ok {
					lost += 100
					continue
				}
				lost += 100 - target.Health
			}
			wantLost := 0.0
			if tc.wantHit {
				wantLost = tc.damage
			}
			if lost != wantLost {
				t.Fatalf("targets lost %v health, want %v", lost, wantLost)
			}

			killed := ecs.Read(tw.World, event.TargetKilledEvent)
			blood := ecs.Read(tw.World, event.SpawnBloodEvent)
			sounds := ecs.Read(tw.World, event.PlaySoundEvent)
			if !tc.wantKill {
				if len(killed)+len(blood)+len(sounds) != 0 || tw.session().Kills != 0 {
					t.Fatalf("unexpected kill events: %v %v %v", killed, blood, sounds)
				}
				return
			}
			if len(killed) != 1 || killed[0].Entity != targets[0] || !approxVec(killed[0].Pos, common.V3(1, 0, 0)) {
				t.Fatalf("unexpected kill events %+v", killed)
			}
			if len(blood) != 1 || !approxVec(blood[0].Pos, common.V3(1, 0, 0)) {
				t.Fatalf("unexpected blood events %+v", blood)
			}
			if len(sounds) != 1 || sounds[0].Name != "splat" {
				t.Fatalf("unexpected sound events %+v", sounds)
			}
			if tw.session().Kills != 1 {
				t.Fatalf("expected one kill, got %d", tw.session().Kills)
			}
			if ecs.IsAlive(tw.World, targets[0]) || tw.PhysicsWorld().Len() != 0 {
				t.Fatal("killed target must leave the world and the physics space")
			}
		})
	}
}
