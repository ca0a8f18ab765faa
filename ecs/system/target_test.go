package system

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/event"
	"github.com/milk9111/towerdefense/ecs/resource"
)

func TestHealthBarFill(t *testing.T) {
	tests := []struct {
		name       string
		health     float64
		max        float64
		wantFill   float64
		wantOffset float64
	}{
		{"full", 100, 100, 1, 0},
		{"half", 50, 100, 0.5, -0.75},
		{"empty", 0, 100, 0, -1.5},
		{"overheal_clamps", 150, 100, 1, 0},
		{"negative_clamps", -20, 100, 0, -1.5},
		{"no_max", 10, 0, 0, -1.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fill, offset := HealthBarFill(tc.health, tc.max)
			if math.Abs(fill-tc.wantFill) > eps || math.Abs(offset-tc.wantOffset) > eps {
				t.Fatalf("got (%v,%v), want (%v,%v)", fill, offset, tc.wantFill, tc.wantOffset)
			}
		})
	}
}

func TestHealthBarSystemTracksHealth(t *testing.T) {
	tw := newTestWorld(t)
	e := spawnTargetAt(t, tw.World, common.Vec3Zero, 80)
	target, _ := ecs.Get(tw.World, e, component.TargetComponent.Kind())
	target.Health = 20

	tw.step(time.Millisecond, NewHealthBarSystem())

	bar, _ := ecs.Get(tw.World, e, component.HealthBarComponent.Kind())
	if math.Abs(bar.Fill-0.25) > eps || math.Abs(bar.OffsetX-(-1.125)) > eps {
		t.Fatalf("unexpected bar %+v", bar)
	}
}

func TestTargetMoves(t *testing.T) {
	tw := newTestWorld(t)
	e := spawnTargetAt(t, tw.World, common.V3(-2, 0, 2), 100)

	tw.step(2*time.Second, NewTargetMoveSystem())

	transform, _ := ecs.Get(tw.World, e, component.TransformComponent.Kind())
	if !approxVec(transform.Position, common.V3(-1.4, 0, 2)) {
		t.Fatalf("expected target at (-1.4,0,2), got %v", transform.Position)
	}
}

func TestTargetLeak(t *testing.T) {
	tests := []struct {
		name      string
		lives     int
		x         float64
		wantLeak  bool
		wantLives int
		wantMenu  bool
	}{
		{"before_exit", 3, 5.9, false, 3, false},
		{"at_exit", 3, 6, true, 2, false},
		{"last_life", 1, 7, true, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			tw.session().Lives = tc.lives
			e := spawnTargetAt(t, tw.World, common.V3(tc.x, 0, 2), 100)
			tw.step(time.Millisecond, NewTargetPhysicsSyncSystem(), NewTargetLeakSystem(nop))

			if ecs.IsAlive(tw.World, e) == tc.wantLeak {
				t.Fatalf("target alive=%v, want leak=%v", ecs.IsAlive(tw.World, e), tc.wantLeak)
			}
			if tw.session().Lives != tc.wantLives {
				t.Fatalf("lives %d, want %d", tw.session().Lives, tc.wantLives)
			}
			if tc.wantLeak {
				if tw.session().Leaks != 1 || len(ecs.Read(tw.World, event.TargetLeakedEvent)) != 1 {
					t.Fatal("leak was not recorded")
				}
				if tw.PhysicsWorld().Len() != 0 {
					t.Fatal("leaked target kept its hit circle")
				}
			}

			app := ecs.MustResource(tw.World, resource.AppStateResource)
			app.Apply(tw.World)
			if (app.Current() == resource.AppMenu) != tc.wantMenu {
				t.Fatalf("app state %v, want menu=%v", app.Current(), tc.wantMenu)
			}
		})
	}
}

func TestWalkAnimationWraps(t *testing.T) {
	tw := newTestWorld(t)
	e := ecs.CreateEntity(tw.World)
	anim := &component.WalkAnimation{Phase: 6, Rate: 1}
	if err := ecs.Add(tw.World, e, component.WalkAnimationComponent.Kind(), anim); err != nil {
		t.Fatal(err)
	}

	tw.step(time.Second, NewWalkAnimationSystem())

	if want := 7 - 2*math.Pi; math.Abs(anim.Phase-want) > 1e-6 {
		t.Fatalf("phase %v, want %v", anim.Phase, want)
	}
}
