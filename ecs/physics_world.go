package ecs

import (
	"github.com/jakecoffman/cp"
)

const collisionTypeTarget cp.CollisionType = 1

// PhysicsWorld owns the Chipmunk space holding target hit circles on the ground (XZ) plane.
// Bodies are kinematic: positions are driven by ECS transforms, never by the solver.
type PhysicsWorld struct {
	space *cp.Space

	entityToShape map[Entity]*cp.Shape
	shapeToEntity map[*cp.Shape]Entity
	radii         map[Entity]float64
	seen          map[Entity]bool
}

// NewPhysicsWorld creates an empty space.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &PhysicsWorld{
		space:         space,
		entityToShape: make(map[Entity]*cp.Shape),
		shapeToEntity: make(map[*cp.Shape]Entity),
		radii:         make(map[Entity]float64),
		seen:          make(map[Entity]bool),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetCircle creates or moves the hit circle for e.
func (pw *PhysicsWorld) SetCircle(e Entity, x, z, radius float64) {
	if pw == nil || pw.space == nil || radius <= 0 {
		return
	}
	pw.seen[e] = true
	pos := cp.Vector{X: x, Y: z}
	if shape, ok := pw.entityToShape[e]; ok {
		if pw.radii[e] == radius {
			shape.Body().SetPosition(pos)
			// Re-adding refreshes the cached bounds; the space is never stepped.
			pw.space.RemoveShape(shape)
			pw.space.AddShape(shape)
			return
		}
		pw.RemoveEntity(e)
		pw.seen[e] = true
	}

	body := cp.NewKinematicBody()
	body.SetPosition(pos)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetCollisionType(collisionTypeTarget)
	pw.space.AddBody(body)
	pw.space.AddShape(shape)

	pw.entityToShape[e] = shape
	pw.shapeToEntity[shape] = e
	pw.radii[e] = radius
}

// RemoveEntity drops the hit circle for e.
func (pw *PhysicsWorld) RemoveEntity(e Entity) {
	if pw == nil {
		return
	}
	shape, ok := pw.entityToShape[e]
	if !ok {
		return
	}
	body := shape.Body()
	pw.space.RemoveShape(shape)
	pw.space.RemoveBody(body)
	delete(pw.entityToShape, e)
	delete(pw.shapeToEntity, shape)
	delete(pw.radii, e)
	delete(pw.seen, e)
}

// BeginSync starts a sync pass; circles not refreshed with SetCircle before EndSync are removed.
func (pw *PhysicsWorld) BeginSync() {
	if pw == nil {
		return
	}
	for e := range pw.seen {
		delete(pw.seen, e)
	}
}

// EndSync removes circles whose entities were not refreshed since BeginSync.
func (pw *PhysicsWorld) EndSync() {
	if pw == nil {
		return
	}
	for e := range pw.entityToShape {
		if !pw.seen[e] {
			pw.RemoveEntity(e)
		}
	}
}

// HitTest returns the entity whose circle contains the point (x, z).
func (pw *PhysicsWorld) HitTest(x, z float64) (Entity, bool) {
	if pw == nil || pw.space == nil || len(pw.entityToShape) == 0 {
		return 0, false
	}
	info := pw.space.PointQueryNearest(cp.Vector{X: x, Y: z}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil || info.Distance > 0 {
		return 0, false
	}
	e, ok := pw.shapeToEntity[info.Shape]
	return e, ok
}

// Len returns the number of tracked circles.
func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.entityToShape)
}
