package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/entity"
	"github.com/milk9111/towerdefense/ecs/event"
	"github.com/milk9111/towerdefense/ecs/resource"
)

func TestSessionReset(t *testing.T) {
	tw := newTestWorld(t)
	db := ecs.MustResource(tw.World, resource.TowerDBResource)
	director := newDirector(tw, time.Second)
	director.Wave, director.Spawned, director.Resting = 4, 2, false

	camera, err := entity.NewCamera(tw.World, newCameraSpec())
	if err != nil {
		t.Fatal(err)
	}
	spawnTargetAt(t, tw.World, common.V3(1, 0, 0), 100)
	spawnProjectile(t, tw.World, common.Vec3Zero, common.V3(1, 0, 0), 1, 1)
	if _, err := entity.NewBloodSplash(tw.World, entity.BloodParams{Lifetime: time.Second}); err != nil {
		t.Fatal(err)
	}
	if _, err := entity.NewTower(tw.World, db.Defs["basic"], common.Vec3Zero, false); err != nil {
		t.Fatal(err)
	}
	if _, err := entity.NewTower(tw.World, db.Defs["basic"], common.V3(3, 0, 0), true); err != nil {
		t.Fatal(err)
	}
	tw.step(time.Millisecond, NewTargetPhysicsSyncSystem())

	session := tw.session()
	session.Lives, session.Kills, session.Leaks, session.Seeded = 1, 9, 2, true
	session.SelectedTower = "basic"
	player := ecs.MustResource(tw.World, resource.PlayerStateResource)
	player.Set(resource.PlayerBuild)
	player.Apply(tw.World)

	tw.step(time.Millisecond, NewSessionResetSystem(nop))
	player.Apply(tw.World)

	for name, n := range map[string]int{
		"targets":     ecs.Count(tw.World, component.TargetComponent.Kind()),
		"projectiles": ecs.Count(tw.World, component.ProjectileComponent.Kind()),
		"blood":       ecs.Count(tw.World, component.BloodSplashComponent.Kind()),
		"towers":      ecs.Count(tw.World, component.TowerComponent.Kind()),
		"circles":     tw.PhysicsWorld().Len(),
	} {
		if n != 0 {
			t.Fatalf("%s survived the reset: %d", name, n)
		}
	}
	if !ecs.IsAlive(tw.World, camera) {
		t.Fatal("camera must survive a reset")
	}
	if session.Lives != 3 || session.Kills != 0 || session.Leaks != 0 || session.Seeded {
		t.Fatalf("session not reset: %+v", session)
	}
	if session.SelectedTower != "basic" {
		t.Fatal("reset should keep the selected tower")
	}
	if director.Wave != 0 || director.Spawned != 0 || !director.Resting {
		t.Fatalf("director not reset: %+v", director)
	}
	if player.Current() != resource.PlayerNone {
		t.Fatalf("player state %v, want none", player.Current())
	}
}

func TestInitialTowersSeedOncePerSession(t *testing.T) {
	tw := newTestWorld(t)
	seed := NewInitialTowersSystem(nop)
	count := func() int { return ecs.Count(tw.World, component.TowerComponent.Kind()) }

	tw.step(time.Millisecond, seed)
	if count() != 2 {
		t.Fatalf("expected 2 initial towers, got %d", count())
	}
	tw.step(time.Millisecond, seed)
	if count() != 2 {
		t.Fatalf("towers seeded twice: %d", count())
	}

	tw.step(time.Millisecond, NewSessionResetSystem(nop))
	tw.step(time.Millisecond, seed)
	if count() != 2 {
		t.Fatalf("expected towers reseeded after reset, got %d", count())
	}

	var placed int
	ecs.ForEach(tw.World, component.PlacedComponent.Kind(), func(ecs.Entity, *component.Placed) { placed++ })
	if placed != 0 {
		t.Fatalf("initial towers must not carry the placed tag, %d do", placed)
	}
}

func TestInitialTowersWaitForCatalog(t *testing.T) {
	tw := newTestWorld(t)
	ecs.RemoveResource(tw.World, resource.TowerDBResource)

	tw.step(time.Millisecond, NewInitialTowersSystem(nop))

	if tw.session().Seeded || ecs.Count(tw.World, component.TowerComponent.Kind()) != 0 {
		t.Fatal("towers seeded without a catalog")
	}
}

func TestSessionResetDropsQueuedKills(t *testing.T) {
	tw := newTestWorld(t)
	ecs.Send(tw.World, event.SpawnBloodEvent, event.SpawnBlood{Pos: common.V3(1, 0, 1)})
	ecs.Send(tw.World, event.TargetKilledEvent, event.TargetKilled{Pos: common.V3(1, 0, 1)})
	ecs.FlushEvents(tw.World)

	NewSessionResetSystem(nop).Update(tw.World)
	NewBloodSpawnSystem(rand.New(rand.NewSource(1)), nop).Update(tw.World)

	if n := ecs.Count(tw.World, component.BloodSplashComponent.Kind()); n != 0 {
		t.Fatalf("blood spawned after reset: %d", n)
	}
	if got := ecs.Read(tw.World, event.TargetKilledEvent); len(got) != 0 {
		t.Fatalf("kill events survived the reset: %v", got)
	}
}
