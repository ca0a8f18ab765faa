package system

import (
	"path"

	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/resource"
	"github.com/milk9111/towerdefense/prefabs"
	"go.uber.org/zap"
)

// CatalogLoadSystem inserts the tower catalog at startup. A catalog that fails
// to load is passed to onError, which by default logs and exits.
type CatalogLoadSystem struct {
	file    string
	log     *zap.Logger
	onError func(error)
}

func NewCatalogLoadSystem(file string, log *zap.Logger, onError func(error)) *CatalogLoadSystem {
	if onError == nil {
		onError = func(err error) {
			log.Fatal("load tower catalog", zap.Error(err))
		}
	}
	return &CatalogLoadSystem{file: file, log: log, onError: onError}
}

func (s *CatalogLoadSystem) Update(w *ecs.World) {
	db, err := prefabs.LoadTowers(s.file)
	if err != nil {
		s.onError(err)
		return
	}
	ecs.InsertResource(w, resource.TowerDBResource, db)
	s.log.Info("tower catalog loaded", zap.String("file", s.file), zap.Strings("towers", db.IDs()))
}

// ChangeSource yields the prefab files changed since the last call.
type ChangeSource interface {
	Drain() []string
}

// PrefabReloadSystem reloads the tower catalog, specs and wave script when
// their files change on disk. A file that fails to load keeps the previous data.
type PrefabReloadSystem struct {
	source      ChangeSource
	towersFile  string
	waveScript  string
	onWaveReady func(WaveSource)
	log         *zap.Logger
}

func NewPrefabReloadSystem(source ChangeSource, towersFile, waveScript string, onWaveReady func(WaveSource), log *zap.Logger) *PrefabReloadSystem {
	return &PrefabReloadSystem{
		source:      source,
		towersFile:  towersFile,
		waveScript:  waveScript,
		onWaveReady: onWaveReady,
		log:         log,
	}
}

func (s *PrefabReloadSystem) Update(w *ecs.World) {
	if s.source == nil {
		return
	}
	for _, name := range s.source.Drain() {
		switch {
		case name == path.Base(s.towersFile):
			s.reloadTowers(w)
		case name == path.Base(s.waveScript):
			s.reloadWaves(w)
		default:
			s.reloadSpec(w, name)
		}
	}
}

func (s *PrefabReloadSystem) reloadTowers(w *ecs.World) {
	db, err := prefabs.LoadTowers(s.towersFile)
	if err != nil {
		s.log.Error("reload tower catalog, keeping previous", zap.Error(err))
		return
	}
	if current, ok := ecs.Resource(w, resource.TowerDBResource); ok {
		*current = *db
	} else {
		ecs.InsertResource(w, resource.TowerDBResource, db)
	}
	s.log.Info("tower catalog reloaded", zap.Strings("towers", db.IDs()))
}

func (s *PrefabReloadSystem) reloadWaves(w *ecs.World) {
	if s.onWaveReady == nil {
		return
	}
	specs, ok := ecs.Resource(w, resource.SpecsResource)
	if !ok || specs.Target == nil {
		return
	}
	src, err := prefabs.LoadScript(s.waveScript)
	if err != nil {
		s.log.Error("reload wave script", zap.Error(err))
		return
	}
	script, err := NewWaveScript(src, specs.Target.Health, specs.Target.Speed)
	if err != nil {
		s.log.Error("reload wave script, keeping previous", zap.Error(err))
		return
	}
	s.onWaveReady(script)
	s.log.Info("wave script reloaded")
}

func (s *PrefabReloadSystem) reloadSpec(w *ecs.World, name string) {
	specs, ok := ecs.Resource(w, resource.SpecsResource)
	if !ok {
		return
	}
	var err error
	switch name {
	case "camera.yaml":
		var spec *prefabs.CameraSpec
		if spec, err = prefabs.LoadCameraSpec(); err == nil {
			specs.Camera = spec
		}
	case "target.yaml":
		var spec *prefabs.TargetSpec
		if spec, err = prefabs.LoadTargetSpec(); err == nil {
			specs.Target = spec
		}
	case "blood.yaml":
		var spec *prefabs.BloodSpec
		if spec, err = prefabs.LoadBloodSpec(); err == nil {
			specs.Blood = spec
		}
	case "world.yaml":
		var spec *prefabs.WorldSpec
		if spec, err = prefabs.LoadWorldSpec(); err == nil {
			specs.World = spec
		}
	default:
		return
	}
	if err != nil {
		s.log.Error("reload spec, keeping previous", zap.String("file", name), zap.Error(err))
		return
	}
	s.log.Info("spec reloaded", zap.String("file", name))
}
