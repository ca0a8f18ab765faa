package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

// ResourceHandle identifies a world singleton of type T.
type ResourceHandle[T any] struct {
	id ComponentID
}

func NewResource[T any]() ResourceHandle[T] {
	return ResourceHandle[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (h ResourceHandle[T]) ID() ComponentID {
	return h.id
}

// EventHandle identifies a typed event channel on the world.
type EventHandle[T any] struct {
	id ComponentID
}

func NewEvent[T any]() EventHandle[T] {
	return EventHandle[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (h EventHandle[T]) ID() ComponentID {
	return h.id
}

type ComponentID uint32

var nextComponentID atomic.Uint32
