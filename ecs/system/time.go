package system

import (
	"time"

	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/resource"
)

// TimeSystem advances the frame clock by a fixed step; Ebiten updates at a fixed TPS.
type TimeSystem struct {
	step time.Duration
}

func NewTimeSystem(tps int) *TimeSystem {
	if tps <= 0 {
		tps = 60
	}
	return &TimeSystem{step: time.Second / time.Duration(tps)}
}

func (s *TimeSystem) Update(w *ecs.World) {
	clock, ok := ecs.Resource(w, resource.TimeResource)
	if !ok {
		return
	}
	clock.Advance(s.step)
}

func deltaSeconds(w *ecs.World) float64 {
	clock, ok := ecs.Resource(w, resource.TimeResource)
	if !ok {
		return 0
	}
	return clock.DeltaSeconds()
}

func delta(w *ecs.World) time.Duration {
	clock, ok := ecs.Resource(w, resource.TimeResource)
	if !ok {
		return 0
	}
	return clock.Delta
}
