package system

import (
	"math"
	"math/rand"
	"time"

	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/entity"
	"github.com/milk9111/towerdefense/ecs/event"
	"github.com/milk9111/towerdefense/ecs/resource"
	"github.com/milk9111/towerdefense/prefabs"
	"go.uber.org/zap"
)

// BloodSpawnSystem turns SpawnBlood events into fading ground decals shaped by
// the blood spec resource.
type BloodSpawnSystem struct {
	rng *rand.Rand
	log *zap.Logger
}

func NewBloodSpawnSystem(rng *rand.Rand, log *zap.Logger) *BloodSpawnSystem {
	return &BloodSpawnSystem{rng: rng, log: log}
}

func bloodDefaults(spec prefabs.BloodSpec) prefabs.BloodSpec {
	if spec.Lifetime <= 0 {
		spec.Lifetime = 2
	}
	if spec.MinScale <= 0 {
		spec.MinScale = 1
	}
	if spec.MaxScale <= spec.MinScale {
		spec.MaxScale = spec.MinScale + 0.6
	}
	if spec.Lift <= 0 {
		spec.Lift = 0.01
	}
	if spec.Blobs <= 0 {
		spec.Blobs = 6
	}
	return spec
}

func (s *BloodSpawnSystem) Update(w *ecs.World) {
	events := ecs.Read(w, event.SpawnBloodEvent)
	if len(events) == 0 {
		return
	}
	var spec prefabs.BloodSpec
	if specs, ok := ecs.Resource(w, resource.SpecsResource); ok && specs.Blood != nil {
		spec = *specs.Blood
	}
	spec = bloodDefaults(spec)

	for _, evt := range events {
		scale := spec.MinScale + s.rng.Float64()*(spec.MaxScale-spec.MinScale)
		rotation := s.rng.Float64() * 2 * math.Pi
		if _, err := entity.NewBloodSplash(w, entity.BloodParams{
			Position: evt.Pos.Add(common.V3(0, spec.Lift, 0)),
			Scale:    scale,
			Rotation: rotation,
			Lifetime: time.Duration(spec.Lifetime * float64(time.Second)),
			Blobs:    s.blobs(spec.Blobs),
		}); err != nil {
			s.log.Error("spawn blood splash", zap.Error(err))
		}
	}
}

// blobs scatters unit-scale droplets around the decal center; the first is the main pool.
func (s *BloodSpawnSystem) blobs(n int) []common.Vec3 {
	out := make([]common.Vec3, 0, n)
	out = append(out, common.V3(0, 0.18, 0))
	for i := 1; i < n; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		dist := 0.08 + s.rng.Float64()*0.22
		radius := 0.03 + s.rng.Float64()*0.06
		// Y holds the droplet radius; decals are flat.
		out = append(out, common.V3(math.Cos(angle)*dist, radius, math.Sin(angle)*dist))
	}
	return out
}

// BloodFadeSystem fades decals over their timer and removes them when it runs out.
type BloodFadeSystem struct{}

func NewBloodFadeSystem() *BloodFadeSystem {
	return &BloodFadeSystem{}
}

func (s *BloodFadeSystem) Update(w *ecs.World) {
	d := delta(w)
	ecs.ForEach(w, component.BloodSplashComponent.Kind(), func(e ecs.Entity, splash *component.BloodSplash) {
		splash.Timer.Tick(d)
		splash.Alpha = 1 - splash.Timer.Fraction()
		if splash.Timer.Finished() {
			ecs.DestroyEntity(w, e)
		}
	})
}
