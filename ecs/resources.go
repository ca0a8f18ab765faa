package ecs

import "github.com/milk9111/towerdefense/ecs/component"

// InsertResource stores value as the world's singleton for h, replacing any previous value.
func InsertResource[T any](w *World, h component.ResourceHandle[T], value *T) {
	if w == nil || value == nil {
		return
	}
	w.resources[h.ID()] = value
}

// Resource returns the singleton for h.
func Resource[T any](w *World, h component.ResourceHandle[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	v, ok := w.resources[h.ID()].(*T)
	return v, ok
}

// MustResource returns the singleton for h and panics when it was never inserted.
func MustResource[T any](w *World, h component.ResourceHandle[T]) *T {
	v, ok := Resource(w, h)
	if !ok {
		panic("ecs: missing resource")
	}
	return v
}

func RemoveResource[T any](w *World, h component.ResourceHandle[T]) bool {
	if w == nil {
		return false
	}
	if _, ok := w.resources[h.ID()]; !ok {
		return false
	}
	delete(w.resources, h.ID())
	return true
}

func HasResource[T any](w *World, h component.ResourceHandle[T]) bool {
	_, ok := Resource(w, h)
	return ok
}

// ResourceExists holds once the resource has been inserted.
func ResourceExists[T any](h component.ResourceHandle[T]) Condition {
	return func(w *World) bool {
		return HasResource(w, h)
	}
}
