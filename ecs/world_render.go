package ecs

import "github.com/hajimehoshi/ebiten/v2"

// RenderSystem draws ECS entities each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Renderer keeps the ordered list of render systems and their conditions.
type Renderer struct {
	systems []scheduledRender
}

type scheduledRender struct {
	system     RenderSystem
	conditions []Condition
}

func (r *Renderer) Add(rs RenderSystem, conditions ...Condition) {
	if r == nil || rs == nil {
		return
	}
	r.systems = append(r.systems, scheduledRender{system: rs, conditions: conditions})
}

// Draw calls all render systems whose conditions hold, in registration order.
func (r *Renderer) Draw(w *World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	for _, s := range r.systems {
		if !allow(w, s.conditions) {
			continue
		}
		s.system.Draw(w, screen)
	}
}
