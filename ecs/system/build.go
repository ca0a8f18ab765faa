package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/entity"
	"github.com/milk9111/towerdefense/ecs/event"
	"github.com/milk9111/towerdefense/ecs/resource"
	"go.uber.org/zap"
)

// MinTowerSpacing is the closest two towers may stand.
const MinTowerSpacing = 1.0

// BuildPlacementSystem places the selected catalog tower where a left click
// meets the ground.
type BuildPlacementSystem struct {
	log *zap.Logger
}

func NewBuildPlacementSystem(log *zap.Logger) *BuildPlacementSystem {
	return &BuildPlacementSystem{log: log}
}

func (s *BuildPlacementSystem) Update(w *ecs.World) {
	in, ok := ecs.Resource(w, resource.InputResource)
	if !ok || in.PointerOverUI || !in.MouseJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	session, ok := ecs.Resource(w, resource.SessionResource)
	if !ok || session.SelectedTower == "" {
		return
	}
	db, ok := ecs.Resource(w, resource.TowerDBResource)
	if !ok {
		return
	}
	def, ok := db.Get(session.SelectedTower)
	if !ok {
		s.log.Warn("selected tower missing from catalog", zap.String("tower", session.SelectedTower))
		return
	}

	view, ok := entity.CameraView(w, in.ScreenWidth, in.ScreenHeight)
	if !ok {
		return
	}
	pos, ok := view.GroundPick(in.CursorX, in.CursorY)
	if !ok || !onGround(w, pos) {
		return
	}
	if TowerNear(w, pos, MinTowerSpacing) {
		s.log.Debug("placement blocked by nearby tower", zap.Float64("x", pos.X), zap.Float64("z", pos.Z))
		return
	}

	tower, err := entity.NewTower(w, def, pos, true)
	if err != nil {
		s.log.Error("place tower", zap.Error(err))
		return
	}
	ecs.Send(w, event.TowerPlacedEvent, event.TowerPlaced{Entity: tower, DefID: def.ID})
	s.log.Info("tower placed", zap.String("tower", def.ID), zap.Float64("x", pos.X), zap.Float64("z", pos.Z))
}

// TowerNear reports whether any tower stands within dist of pos.
func TowerNear(w *ecs.World, pos common.Vec3, dist float64) bool {
	near := false
	ecs.ForEach2(w, component.TowerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Tower, transform *component.Transform) {
		if transform.Position.Distance(pos) < dist {
			near = true
		}
	})
	return near
}

// onGround checks pos against the ground square, when there is one.
func onGround(w *ecs.World, pos common.Vec3) bool {
	e, ok := ecs.First(w, component.GroundComponent.Kind())
	if !ok {
		return true
	}
	ground, _ := ecs.Get(w, e, component.GroundComponent.Kind())
	half := ground.Size / 2
	return pos.X >= -half && pos.X <= half && pos.Z >= -half && pos.Z <= half
}
