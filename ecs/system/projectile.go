package system

import (
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/event"
	"github.com/milk9111/towerdefense/ecs/resource"
	"go.uber.org/zap"
)

// targetHeightPerScale converts a target's transform scale to the height of its hit band.
const targetHeightPerScale = 6.0

// ProjectileSystem moves projectiles, expires them and resolves hits against
// target circles in the physics world.
type ProjectileSystem struct {
	log       *zap.Logger
	killSound string
}

func NewProjectileSystem(log *zap.Logger, killSound string) *ProjectileSystem {
	return &ProjectileSystem{log: log, killSound: killSound}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	d := delta(w)
	dt := d.Seconds()
	pw := w.PhysicsWorld()

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, transform *component.Transform) {
		transform.Position = transform.Position.Add(p.Direction.Scale(p.Speed * dt))

		p.LifeTimer.Tick(d)
		if p.LifeTimer.Finished() {
			ecs.DestroyEntity(w, e)
			return
		}

		hit, ok := pw.HitTest(transform.Position.X, transform.Position.Z)
		if !ok {
			return
		}
		target, ok := ecs.Get(w, hit, component.TargetComponent.Kind())
		if !ok {
			return
		}
		targetTransform, ok := ecs.Get(w, hit, component.TransformComponent.Kind())
		if !ok || !withinHeight(transform.Position.Y, targetTransform) {
			return
		}

		target.Health -= p.Damage
		ecs.DestroyEntity(w, e)

		if target.Health > 0 {
			return
		}
		s.kill(w, hit, targetTransform)
	})
}

func (s *ProjectileSystem) kill(w *ecs.World, e ecs.Entity, transform *component.Transform) {
	pos := transform.Position
	if pw := w.PhysicsWorld(); pw != nil {
		pw.RemoveEntity(e)
	}
	ecs.DestroyEntity(w, e)

	ecs.Send(w, event.TargetKilledEvent, event.TargetKilled{Entity: e, Pos: pos})
	ecs.Send(w, event.SpawnBloodEvent, event.SpawnBlood{Pos: pos})
	if s.killSound != "" {
		ecs.Send(w, event.PlaySoundEvent, event.PlaySound{Name: s.killSound, Volume: 0.7})
	}
	if session, ok := ecs.Resource(w, resource.SessionResource); ok {
		session.Kills++
	}
	s.log.Debug("target killed", zap.Stringer("entity", e))
}

func withinHeight(y float64, target *component.Transform) bool {
	scale := target.Scale
	if scale <= 0 {
		scale = 1
	}
	base := target.Position.Y
	return y >= base && y <= base+scale*targetHeightPerScale
}
