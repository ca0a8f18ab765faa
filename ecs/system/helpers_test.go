package system

import (
	"testing"
	"time"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/resource"
	"github.com/milk9111/towerdefense/prefabs"
	"go.uber.org/zap"
)

const eps = 1e-9

var nop = zap.NewNop()

type testWorld struct {
	*ecs.World
	t *testing.T
}

func newTestWorld(t *testing.T) testWorld {
	t.Helper()
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	ecs.InsertResource(w, resource.TimeResource, &resource.Time{})
	in := resource.NewInput()
	in.ScreenWidth, in.ScreenHeight = 800, 600
	ecs.InsertResource(w, resource.InputResource, in)
	ecs.InsertResource(w, resource.SessionResource, resource.NewSession(3))
	ecs.InsertResource(w, resource.AppStateResource, ecs.NewStateMachine(resource.AppInGame))
	ecs.InsertResource(w, resource.PlayerStateResource, ecs.NewStateMachine(resource.PlayerNone))
	ecs.InsertResource(w, resource.SpecsResource, &resource.Specs{
		Target: &prefabs.TargetSpec{
			Spawn:     prefabs.Vec3Spec{X: -2, Z: 2},
			Scale:     0.15,
			Speed:     0.3,
			Health:    100,
			HitRadius: 0.2,
			ExitX:     6,
		},
		Blood: &prefabs.BloodSpec{Lifetime: 2, MinScale: 1, MaxScale: 1.6, Lift: 0.01, Blobs: 4},
		World: &prefabs.WorldSpec{Towers: []prefabs.TowerPlacement{{Tower: "basic"}, {Tower: "heavy", X: 2}}},
	})
	ecs.InsertResource(w, resource.TowerDBResource, &prefabs.TowerDB{Defs: map[string]prefabs.TowerDef{
		"basic": {ID: "basic", FireInterval: 1, Damage: 40, ProjectileSpeed: 5, ProjectileScale: 0.05, Offset: common.V3(0, 0.5, 0), ShotSound: "shot_light", ShotVolume: 0.6},
		"heavy": {ID: "heavy", FireInterval: 2, Range: 3, Damage: 100, ProjectileSpeed: 3, ProjectileScale: 0.1, ShotSound: "shot_heavy", ShotVolume: 0.8},
	}})
	return testWorld{World: w, t: t}
}

// step runs one frame of systems with the given delta and then flushes events.
func (tw testWorld) step(d time.Duration, systems ...ecs.System) {
	ecs.MustResource(tw.World, resource.TimeResource).Advance(d)
	for _, s := range systems {
		s.Update(tw.World)
	}
	ecs.FlushEvents(tw.World)
}

func (tw testWorld) input() *resource.Input {
	return ecs.MustResource(tw.World, resource.InputResource)
}

func (tw testWorld) session() *resource.Session {
	return ecs.MustResource(tw.World, resource.SessionResource)
}

func approxVec(a, b common.Vec3) bool {
	return a.Distance(b) < 1e-6
}

// newCameraSpec looks down at the origin from 45 degrees.
func newCameraSpec() *prefabs.CameraSpec {
	return &prefabs.CameraSpec{Position: prefabs.Vec3Spec{Y: 8, Z: 8}, FOVDegrees: 60}
}
