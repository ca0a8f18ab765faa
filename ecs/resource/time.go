package resource

import (
	"time"

	"github.com/milk9111/towerdefense/ecs/component"
)

// Time is the frame clock. Delta is zero while nothing should advance.
type Time struct {
	Delta   time.Duration
	Elapsed time.Duration
	Frame   uint64
}

func (t *Time) DeltaSeconds() float64 {
	if t == nil {
		return 0
	}
	return t.Delta.Seconds()
}

// Advance moves the clock forward by one frame of d.
func (t *Time) Advance(d time.Duration) {
	t.Delta = d
	t.Elapsed += d
	t.Frame++
}

var TimeResource = component.NewResource[Time]()
