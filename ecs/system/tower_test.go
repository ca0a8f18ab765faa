package system

import (
	"testing"
	"time"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/entity"
	"github.com/milk9111/towerdefense/ecs/event"
	"github.com/milk9111/towerdefense/ecs/resource"
)

func spawnTargetAt(t *testing.T, w *ecs.World, pos common.Vec3, health float64) ecs.Entity {
	t.Helper()
	specs := ecs.MustResource(w, resource.SpecsResource)
	e, err := entity.NewTarget(w, specs.Target, health, 0)
	if err != nil {
		t.Fatalf("spawn target: %v", err)
	}
	transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	transform.Position = pos
	return e
}

func TestNearestTarget(t *testing.T) {
	tests := []struct {
		name     string
		targets  []common.Vec3
		dead     int
		maxRange float64
		wantIdx  int
	}{
		{"no_targets", nil, -1, 0, -1},
		{"picks_closest", []common.Vec3{common.V3(5, 0, 0), common.V3(1, 0, 1), common.V3(-3, 0, 0)}, -1, 0, 1},
		{"range_excludes_far", []common.Vec3{common.V3(5, 0, 0)}, -1, 3, -1},
		{"range_keeps_near", []common.Vec3{common.V3(5, 0, 0), common.V3(2, 0, 0)}, -1, 3, 1},
		{"ignores_dead", []common.Vec3{common.V3(1, 0, 0), common.V3(2, 0, 0)}, 0, 0, 1},
		{"tie_keeps_first", []common.Vec3{common.V3(2, 0, 0), common.V3(-2, 0, 0)}, -1, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			var ents []ecs.Entity
			for i, p := range tc.targets {
				health := 100.0
				e := spawnTargetAt(t, tw.World, p, health)
				if i == tc.dead {
					target, _ := ecs.Get(tw.World, e, component.TargetComponent.Kind())
					target.Health = 0
				}
				ents = append(ents, e)
			}

			got, pos, ok := NearestTarget(tw.World, common.Vec3Zero, tc.maxRange)
			if tc.wantIdx < 0 {
				if ok {
					t.Fatalf("expected no target, got %v", got)
				}
				return
			}
			if !ok || got != ents[tc.wantIdx] || pos != tc.targets[tc.wantIdx] {
				t.Fatalf("expected target %d, got %v at %v ok=%v", tc.wantIdx, got, pos, ok)
			}
		})
	}
}

func TestTowerFiresOnTimer(t *testing.T) {
	tw := newTestWorld(t)
	db := ecs.MustResource(tw.World, resource.TowerDBResource)
	tower, err := entity.NewTower(tw.World, db.Defs["basic"], common.Vec3Zero, false)
	if err != nil {
		t.Fatalf("new tower: %v", err)
	}
	targetPos := common.V3(3, 0, 0)
	spawnTargetAt(t, tw.World, targetPos, 100)

	sys := NewTowerFireSystem(nop)
	tw.step(600*time.Millisecond, sys)
	if n := ecs.Count(tw.World, component.ProjectileComponent.Kind()); n != 0 {
		t.Fatalf("fired before the interval elapsed: %d projectiles", n)
	}

	tw.step(600*time.Millisecond, sys)
	if n := ecs.Count(tw.World, component.ProjectileComponent.Kind()); n != 1 {
		t.Fatalf("expected one projectile, got %d", n)
	}

	pe, _ := ecs.First(tw.World, component.ProjectileComponent.Kind())
	p, _ := ecs.Get(tw.World, pe, component.ProjectileComponent.Kind())
	pt, _ := ecs.Get(tw.World, pe, component.TransformComponent.Kind())
	spawn := common.V3(0, 0.5, 0)
	wantDir := targetPos.Add(common.V3(0, aimHeight, 0)).Sub(spawn).Normalize()
	if !approxVec(pt.Position, spawn) || !approxVec(p.Direction, wantDir) {
		t.Fatalf("unexpected projectile at %v dir %v", pt.Position, p.Direction)
	}
	if p.Speed != 5 || p.Damage != 40 || p.Source != uint64(tower) || p.LifeTimer.Duration != entity.ProjectileLifetime {
		t.Fatalf("unexpected projectile %+v", p)
	}

	towerTransform, _ := ecs.Get(tw.World, tower, component.TransformComponent.Kind())
	facing := common.V3(0, 0, -1).RotateY(towerTransform.Yaw)
	if !approxVec(facing, common.V3(1, 0, 0)) {
		t.Fatalf("tower should face +X, faces %v", facing)
	}

	sounds := ecs.Read(tw.World, event.PlaySoundEvent)
	if len(sounds) != 1 || sounds[0].Name != "shot_light" || sounds[0].Volume != 0.6 {
		t.Fatalf("unexpected sounds %+v", sounds)
	}
}

func TestTowerWithoutTargetHoldsFire(t *testing.T) {
	tw := newTestWorld(t)
	db := ecs.MustResource(tw.World, resource.TowerDBResource)
	if _, err := entity.NewTower(tw.World, db.Defs["heavy"], common.Vec3Zero, false); err != nil {
		t.Fatalf("new tower: %v", err)
	}
	spawnTargetAt(t, tw.World, common.V3(10, 0, 0), 100)

	sys := NewTowerFireSystem(nop)
	for i := 0; i < 5; i++ {
		tw.step(time.Second, sys)
	}
	if n := ecs.Count(tw.World, component.ProjectileComponent.Kind()); n != 0 {
		t.Fatalf("out of range target drew fire: %d projectiles", n)
	}
	if len(ecs.Read(tw.World, event.PlaySoundEvent)) != 0 {
		t.Fatal("no shot should play without a projectile")
	}
}
