package system

import (
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/entity"
	"github.com/milk9111/towerdefense/ecs/resource"
	"go.uber.org/zap"
)

// WaveSource maps a 1-based wave number to its parameters.
type WaveSource interface {
	Params(wave int) (resource.WaveParams, error)
}

// WaveScript evaluates a tengo script that reads wave, base_health and
// base_speed and assigns count, interval, health and speed.
type WaveScript struct {
	compiled   *tengo.Compiled
	baseHealth float64
	baseSpeed  float64
}

func NewWaveScript(src []byte, baseHealth, baseSpeed float64) (*WaveScript, error) {
	script := tengo.NewScript(src)
	for name, v := range map[string]any{
		"wave":        0,
		"base_health": baseHealth,
		"base_speed":  baseSpeed,
		"count":       0,
		"interval":    0.0,
		"health":      0.0,
		"speed":       0.0,
	} {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("waves: add %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("waves: compile: %w", err)
	}
	return &WaveScript{compiled: compiled, baseHealth: baseHealth, baseSpeed: baseSpeed}, nil
}

// Params runs the script for one wave. Runtime panics inside the VM come back as errors.
func (s *WaveScript) Params(wave int) (p resource.WaveParams, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = resource.WaveParams{}, fmt.Errorf("waves: run wave %d: %v", wave, r)
		}
	}()
	if err := s.compiled.Set("wave", wave); err != nil {
		return resource.WaveParams{}, fmt.Errorf("waves: set wave: %w", err)
	}
	if err := s.compiled.Run(); err != nil {
		return resource.WaveParams{}, fmt.Errorf("waves: run wave %d: %w", wave, err)
	}

	p = resource.WaveParams{
		Count:    s.compiled.Get("count").Int(),
		Interval: s.compiled.Get("interval").Float(),
		Health:   s.compiled.Get("health").Float(),
		Speed:    s.compiled.Get("speed").Float(),
	}
	if p.Count < 0 {
		p.Count = 0
	}
	if p.Interval <= 0 {
		return resource.WaveParams{}, fmt.Errorf("waves: wave %d interval must be positive, got %v", wave, p.Interval)
	}
	if p.Health <= 0 {
		p.Health = s.baseHealth
	}
	if p.Speed <= 0 {
		p.Speed = s.baseSpeed
	}
	return p, nil
}

// WaveDirectorSystem spawns the targets of each wave on the spawn timer and
// rests for the intermission between waves.
type WaveDirectorSystem struct {
	source WaveSource
	log    *zap.Logger
}

func NewWaveDirectorSystem(source WaveSource, log *zap.Logger) *WaveDirectorSystem {
	return &WaveDirectorSystem{source: source, log: log}
}

// SetSource swaps the wave source, for script hot reload.
func (s *WaveDirectorSystem) SetSource(source WaveSource) {
	if source != nil {
		s.source = source
	}
}

func (s *WaveDirectorSystem) Update(w *ecs.World) {
	director, ok := ecs.Resource(w, resource.WaveDirectorResource)
	if !ok {
		return
	}
	specs, ok := ecs.Resource(w, resource.SpecsResource)
	if !ok || specs.Target == nil {
		return
	}
	d := delta(w)

	if director.Resting {
		director.Intermission.Tick(d)
		if !director.Intermission.Finished() {
			return
		}
		s.startWave(director, director.Wave+1)
		s.spawn(w, director, specs)
		return
	}

	director.SpawnTimer.Tick(d)
	for i := 0; i < director.SpawnTimer.TimesFinished() && director.Spawned < director.Params.Count; i++ {
		s.spawn(w, director, specs)
	}
	if director.Spawned >= director.Params.Count {
		director.Resting = true
		director.Intermission.Reset()
		s.log.Info("wave complete", zap.Int("wave", director.Wave))
	}
}

func (s *WaveDirectorSystem) startWave(director *resource.WaveDirector, wave int) {
	params, err := s.source.Params(wave)
	if err != nil {
		s.log.Error("wave script failed, repeating previous parameters", zap.Int("wave", wave), zap.Error(err))
		params = director.Params
		if params.Interval <= 0 {
			params = resource.WaveParams{Count: 1, Interval: 1}
		}
	}
	director.Wave = wave
	director.Params = params
	director.Spawned = 0
	director.Resting = false
	director.SpawnTimer = component.NewTimer(time.Duration(params.Interval*float64(time.Second)), component.TimerRepeating)
	s.log.Info("wave started", zap.Int("wave", wave), zap.Int("count", params.Count), zap.Float64("interval", params.Interval))
}

func (s *WaveDirectorSystem) spawn(w *ecs.World, director *resource.WaveDirector, specs *resource.Specs) {
	if director.Spawned >= director.Params.Count {
		return
	}
	if _, err := entity.NewTarget(w, specs.Target, director.Params.Health, director.Params.Speed); err != nil {
		s.log.Error("spawn target", zap.Error(err))
		return
	}
	director.Spawned++
}
