package system

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/entity"
	"github.com/milk9111/towerdefense/ecs/event"
	"github.com/milk9111/towerdefense/ecs/resource"
	"github.com/milk9111/towerdefense/prefabs"
)

func TestBuildPlacement(t *testing.T) {
	tests := []struct {
		name      string
		selected  string
		cursorY   float64
		overUI    bool
		existing  []common.Vec3
		click     bool
		wantPlace bool
	}{
		{"places_at_cursor", "basic", 300, false, nil, true, true},
		{"needs_click", "basic", 300, false, nil, false, false},
		{"needs_selection", "", 300, false, nil, true, false},
		{"unknown_selection", "laser", 300, false, nil, true, false},
		{"blocked_by_ui", "basic", 300, true, nil, true, false},
		{"off_ground", "basic", 0, false, nil, true, false},
		{"too_close", "basic", 300, false, []common.Vec3{common.V3(0.5, 0, 0.5)}, true, false},
		{"far_enough", "basic", 300, false, []common.Vec3{common.V3(1, 0, 1)}, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			if _, err := entity.NewCamera(tw.World, newCameraSpec()); err != nil {
				t.Fatal(err)
			}
			if _, err := entity.NewGround(tw.World, prefabs.GroundSpec{Size: 20}); err != nil {
				t.Fatal(err)
			}
			db := ecs.MustResource(tw.World, resource.TowerDBResource)
			for _, p := range tc.existing {
				if _, err := entity.NewTower(tw.World, db.Defs["heavy"], p, false); err != nil {
					t.Fatal(err)
				}
			}
			before := ecs.Count(tw.World, component.TowerComponent.Kind())

			tw.session().SelectedTower = tc.selected
			in := tw.input()
			in.CursorX, in.CursorY = 400, tc.cursorY
			in.PointerOverUI = tc.overUI
			if tc.click {
				in.PressMouse(ebiten.MouseButtonLeft)
			}

			tw.step(time.Millisecond, NewBuildPlacementSystem(nop))

			added := ecs.Count(tw.World, component.TowerComponent.Kind()) - before
			placed := ecs.Read(tw.World, event.TowerPlacedEvent)
			if !tc.wantPlace {
				if added != 0 || len(placed) != 0 {
					t.Fatalf("expected no placement, got %d towers %v", added, placed)
				}
				return
			}
			if added != 1 || len(placed) != 1 || placed[0].DefID != "basic" {
				t.Fatalf("expected one basic tower, got %d towers %v", added, placed)
			}
			if !ecs.Has(tw.World, placed[0].Entity, component.PlacedComponent.Kind()) {
				t.Fatal("placed tower missing its tag")
			}
			transform, _ := ecs.Get(tw.World, placed[0].Entity, component.TransformComponent.Kind())
			if math.Abs(transform.Position.X) > 1e-6 || math.Abs(transform.Position.Z) > 1e-6 || transform.Position.Y != 0 {
				t.Fatalf("tower placed at %v, want origin", transform.Position)
			}
		})
	}
}

func TestTowerNear(t *testing.T) {
	tw := newTestWorld(t)
	db := ecs.MustResource(tw.World, resource.TowerDBResource)
	if _, err := entity.NewTower(tw.World, db.Defs["basic"], common.V3(2, 0, 0), false); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		pos  common.Vec3
		want bool
	}{
		{common.V3(2, 0, 0), true},
		{common.V3(2.9, 0, 0), true},
		{common.V3(3, 0, 0), false},
		{common.V3(-2, 0, 0), false},
	}
	for _, tc := range tests {
		if got := TowerNear(tw.World, tc.pos, MinTowerSpacing); got != tc.want {
			t.Fatalf("TowerNear(%v) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}
