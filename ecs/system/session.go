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

// SessionResetSystem runs on entering the menu: it clears the battlefield and
// rewinds the session and wave director.
type SessionResetSystem struct {
	log *zap.Logger
}

func NewSessionResetSystem(log *zap.Logger) *SessionResetSystem {
	return &SessionResetSystem{log: log}
}

func (s *SessionResetSystem) Update(w *ecs.World) {
	// Events from the last game frame would otherwise land in the menu.
	ecs.Clear(w, event.SpawnBloodEvent)
	ecs.Clear(w, event.TargetKilledEvent)
	ecs.Clear(w, event.TargetLeakedEvent)

	removed := 0
	removed += destroyAll(w, component.TargetComponent.Kind())
	removed += destroyAll(w, component.ProjectileComponent.Kind())
	removed += destroyAll(w, component.BloodSplashComponent.Kind())
	removed += destroyAll(w, component.TowerComponent.Kind())
	if pw := w.PhysicsWorld(); pw != nil {
		pw.BeginSync()
		pw.EndSync()
	}

	if session, ok := ecs.Resource(w, resource.SessionResource); ok {
		session.Reset()
	}
	if director, ok := ecs.Resource(w, resource.WaveDirectorResource); ok {
		director.Reset()
	}
	ecs.SetState(w, resource.PlayerStateResource, resource.PlayerNone)
	s.log.Debug("session reset", zap.Int("removed", removed))
}

func destroyAll[T any](w *ecs.World, kind component.ComponentKind[T]) int {
	n := 0
	ecs.ForEach(w, kind, func(e ecs.Entity, _ *T) {
		if ecs.DestroyEntity(w, e) {
			n++
		}
	})
	return n
}

// InitialTowersSystem builds the towers listed in world.yaml once per session,
// as soon as the catalog is available.
type InitialTowersSystem struct {
	log *zap.Logger
}

func NewInitialTowersSystem(log *zap.Logger) *InitialTowersSystem {
	return &InitialTowersSystem{log: log}
}

func (s *InitialTowersSystem) Update(w *ecs.World) {
	session, ok := ecs.Resource(w, resource.SessionResource)
	if !ok || session.Seeded {
		return
	}
	db, ok := ecs.Resource(w, resource.TowerDBResource)
	if !ok {
		return
	}
	specs, ok := ecs.Resource(w, resource.SpecsResource)
	if !ok || specs.World == nil {
		return
	}

	for _, placement := range specs.World.Towers {
		def, ok := db.Get(placement.Tower)
		if !ok {
			s.log.Warn("world places unknown tower", zap.String("tower", placement.Tower))
			continue
		}
		if _, err := entity.NewTower(w, def, common.V3(placement.X, placement.Y, placement.Z), false); err != nil {
			s.log.Error("spawn initial tower", zap.String("tower", placement.Tower), zap.Error(err))
		}
	}
	session.Seeded = true
}
