package system

import (
	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/entity"
	"github.com/milk9111/towerdefense/ecs/event"
	"github.com/milk9111/towerdefense/ecs/resource"
	"go.uber.org/zap"
)

// aimHeight lifts the aim point from a target's feet to its body.
const aimHeight = 0.3

// TowerFireSystem ticks tower timers and fires at the nearest target each time one wraps.
type TowerFireSystem struct {
	log *zap.Logger
}

func NewTowerFireSystem(log *zap.Logger) *TowerFireSystem {
	return &TowerFireSystem{log: log}
}

func (s *TowerFireSystem) Update(w *ecs.World) {
	db, ok := ecs.Resource(w, resource.TowerDBResource)
	if !ok {
		return
	}
	d := delta(w)

	ecs.ForEach2(w, component.TowerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tower *component.Tower, transform *component.Transform) {
		tower.ShootingTimer.Tick(d)
		if !tower.ShootingTimer.JustFinished() {
			return
		}

		def, ok := db.Get(tower.DefID)
		if !ok {
			s.log.Warn("tower has unknown definition", zap.Stringer("entity", e), zap.String("def", tower.DefID))
			return
		}

		spawn := transform.Position.Add(tower.ProjectileOffset)
		_, targetPos, found := NearestTarget(w, spawn, def.Range)
		if !found {
			return
		}

		dir := targetPos.Add(common.V3(0, aimHeight, 0)).Sub(spawn).Normalize()
		if dir.IsZero() {
			return
		}
		flat := common.V3(dir.X, 0, dir.Z)
		if !flat.IsZero() {
			transform.Yaw = common.YawTowards(flat)
		}

		if _, err := entity.NewProjectile(w, entity.ProjectileParams{
			Position:  spawn,
			Direction: dir,
			Speed:     def.ProjectileSpeed,
			Damage:    def.Damage,
			Scale:     def.ProjectileScale,
			Source:    e,
		}); err != nil {
			s.log.Error("spawn projectile", zap.Stringer("tower", e), zap.Error(err))
			return
		}
		if def.ShotSound != "" {
			ecs.Send(w, event.PlaySoundEvent, event.PlaySound{Name: def.ShotSound, Volume: def.ShotVolume})
		}
	})
}

// NearestTarget returns the live target closest to from. When maxRange is
// positive, targets farther than it are ignored. Ties keep the first found.
func NearestTarget(w *ecs.World, from common.Vec3, maxRange float64) (ecs.Entity, common.Vec3, bool) {
	var (
		best    ecs.Entity
		bestPos common.Vec3
		bestD   float64
		found   bool
	)
	ecs.ForEach2(w, component.TargetComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, target *component.Target, transform *component.Transform) {
		if target.Health <= 0 {
			return
		}
		d := from.Distance(transform.Position)
		if maxRange > 0 && d > maxRange {
			return
		}
		if !found || d < bestD {
			best, bestPos, bestD, found = e, transform.Position, d, true
		}
	})
	return best, bestPos, found
}
