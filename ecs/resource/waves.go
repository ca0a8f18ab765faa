package resource

import "github.com/milk9111/towerdefense/ecs/component"

// WaveParams is what the wave script returns for one wave.
type WaveParams struct {
	Count    int
	Interval float64
	Health   float64
	Speed    float64
}

// WaveDirector paces target spawns. Spawned counts targets of the current wave.
type WaveDirector struct {
	Wave         int
	Spawned      int
	Params       WaveParams
	SpawnTimer   component.Timer
	Intermission component.Timer
	Resting      bool
}

// Reset rewinds to before wave 1; the first wave starts after one intermission.
func (d *WaveDirector) Reset() {
	d.Wave = 0
	d.Spawned = 0
	d.Params = WaveParams{}
	d.SpawnTimer.Reset()
	d.Intermission.Reset()
	d.Resting = true
}

var WaveDirectorResource = component.NewResource[WaveDirector]()
