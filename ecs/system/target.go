package system

import (
	"math"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/event"
	"github.com/milk9111/towerdefense/ecs/resource"
	"go.uber.org/zap"
)

// healthBarWidth is the world width of a full bar before target scale.
const healthBarWidth = 1.5

// TargetMoveSystem walks targets along +X.
type TargetMoveSystem struct{}

func NewTargetMoveSystem() *TargetMoveSystem {
	return &TargetMoveSystem{}
}

func (s *TargetMoveSystem) Update(w *ecs.World) {
	dt := deltaSeconds(w)
	ecs.ForEach2(w, component.TargetComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, target *component.Target, transform *component.Transform) {
		transform.Position.X += target.Speed * dt
	})
}

// TargetLeakSystem removes targets that reached the exit and charges a life for each.
// Losing the last life sends the app back to the menu.
type TargetLeakSystem struct {
	log *zap.Logger
}

func NewTargetLeakSystem(log *zap.Logger) *TargetLeakSystem {
	return &TargetLeakSystem{log: log}
}

func (s *TargetLeakSystem) Update(w *ecs.World) {
	specs, ok := ecs.Resource(w, resource.SpecsResource)
	if !ok || specs.Target == nil {
		return
	}
	exitX := specs.Target.ExitX
	session, _ := ecs.Resource(w, resource.SessionResource)

	ecs.ForEach2(w, component.TargetComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Target, transform *component.Transform) {
		if transform.Position.X < exitX {
			return
		}
		if pw := w.PhysicsWorld(); pw != nil {
			pw.RemoveEntity(e)
		}
		ecs.DestroyEntity(w, e)
		ecs.Send(w, event.TargetLeakedEvent, event.TargetLeaked{Entity: e})

		if session == nil {
			return
		}
		session.Leaks++
		if session.Lives > 0 {
			session.Lives--
		}
		s.log.Info("target leaked", zap.Int("lives", session.Lives))
		if session.Lives == 0 {
			s.log.Info("game over", zap.Int("kills", session.Kills))
			ecs.SetState(w, resource.AppStateResource, resource.AppMenu)
		}
	})
}

// HealthBarSystem keeps each bar's fill and left-aligned offset in step with health.
type HealthBarSystem struct{}

func NewHealthBarSystem() *HealthBarSystem {
	return &HealthBarSystem{}
}

func (s *HealthBarSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.HealthBarComponent.Kind(), component.TargetComponent.Kind(), func(_ ecs.Entity, bar *component.HealthBar, target *component.Target) {
		maxHealth := bar.MaxHealth
		if maxHealth <= 0 {
			maxHealth = target.MaxHealth
		}
		bar.Fill, bar.OffsetX = HealthBarFill(target.Health, maxHealth)
	})
}

// HealthBarFill returns the clamped health fraction and the x offset that keeps
// a bar of healthBarWidth anchored at its left edge.
func HealthBarFill(health, maxHealth float64) (fill, offsetX float64) {
	if maxHealth <= 0 {
		return 0, -healthBarWidth
	}
	fill = common.Clamp(health/maxHealth, 0, 1)
	return fill, (fill - 1) * healthBarWidth
}

// WalkAnimationSystem advances walk cycles; it only runs in game, so pausing freezes them.
type WalkAnimationSystem struct{}

func NewWalkAnimationSystem() *WalkAnimationSystem {
	return &WalkAnimationSystem{}
}

func (s *WalkAnimationSystem) Update(w *ecs.World) {
	dt := deltaSeconds(w)
	ecs.ForEach(w, component.WalkAnimationComponent.Kind(), func(_ ecs.Entity, anim *component.WalkAnimation) {
		anim.Phase = math.Mod(anim.Phase+anim.Rate*dt, 2*math.Pi)
	})
}

// TargetPhysicsSyncSystem mirrors target positions into the physics world's hit circles.
type TargetPhysicsSyncSystem struct{}

func NewTargetPhysicsSyncSystem() *TargetPhysicsSyncSystem {
	return &TargetPhysicsSyncSystem{}
}

func (s *TargetPhysicsSyncSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	pw.BeginSync()
	ecs.ForEach2(w, component.TargetComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, target *component.Target, transform *component.Transform) {
		pw.SetCircle(e, transform.Position.X, transform.Position.Z, target.HitRadius)
	})
	pw.EndSync()
}
