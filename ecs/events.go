package ecs

import "github.com/milk9111/towerdefense/ecs/component"

// eventChannel double-buffers one event type. Events sent during a frame become
// readable after the next flush and stay readable for that whole frame.
type eventChannel struct {
	readable []any
	pending  []any
}

func (w *World) channel(id component.ComponentID) *eventChannel {
	ch, ok := w.events[id]
	if !ok {
		ch = &eventChannel{}
		w.events[id] = ch
	}
	return ch
}

// Send queues an event for delivery on the next frame.
func Send[T any](w *World, h component.EventHandle[T], evt T) {
	if w == nil {
		return
	}
	ch := w.channel(h.ID())
	ch.pending = append(ch.pending, evt)
}

// Read returns the events delivered this frame. Every reader sees the same slice.
func Read[T any](w *World, h component.EventHandle[T]) []T {
	if w == nil {
		return nil
	}
	ch, ok := w.events[h.ID()]
	if !ok || len(ch.readable) == 0 {
		return nil
	}
	out := make([]T, 0, len(ch.readable))
	for _, v := range ch.readable {
		if evt, ok := v.(T); ok {
			out = append(out, evt)
		}
	}
	return out
}

// Clear drops the readable events of one type, like a reader that discards its backlog.
func Clear[T any](w *World, h component.EventHandle[T]) {
	if w == nil {
		return
	}
	if ch, ok := w.events[h.ID()]; ok {
		ch.readable = nil
	}
}

// FlushEvents promotes pending events to readable and drops the previous frame's events.
func FlushEvents(w *World) {
	if w == nil {
		return
	}
	for _, ch := range w.events {
		ch.readable = ch.pending
		ch.pending = nil
	}
}
