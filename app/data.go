package app

import (
	"fmt"
	"path/filepath"

	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/resource"
	"github.com/milk9111/towerdefense/ecs/system"
	"github.com/milk9111/towerdefense/prefabs"
	"go.uber.org/zap"
)

// DataLoadPlugin loads the prefab specs, queues the tower catalog load and,
// when watching, reloads prefabs as they change on disk.
type DataLoadPlugin struct {
	// OnCatalogError replaces the default fatal exit when the catalog fails to load.
	OnCatalogError func(error)
}

func (p DataLoadPlugin) Build(a *App) error {
	log := a.Log.Named("data")

	specs, err := loadSpecs()
	if err != nil {
		return err
	}
	ecs.InsertResource(a.World, resource.SpecsResource, specs)

	towers := a.Config.Data.Towers
	a.Scheduler.Add(ecs.Startup, system.NewCatalogLoadSystem(towers, log, p.OnCatalogError))

	if !a.Config.Data.Watch {
		return nil
	}
	dir := a.Config.Data.PrefabDir
	watcher, err := prefabs.NewWatcher(dir, filepath.Join(dir, "scripts"))
	if err != nil {
		return fmt.Errorf("data: watch %s: %w", dir, err)
	}
	a.OnClose(watcher.Close)
	a.Scheduler.Add(ecs.PreUpdate, system.NewPrefabReloadSystem(watcher, towers, a.Config.Game.WaveScript, a.setWaveSource, log))
	log.Info("watching prefabs", zap.String("dir", dir))
	return nil
}

func loadSpecs() (*resource.Specs, error) {
	camera, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	target, err := prefabs.LoadTargetSpec()
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	blood, err := prefabs.LoadBloodSpec()
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	world, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	return &resource.Specs{Camera: camera, Target: target, Blood: blood, World: world}, nil
}

func (a *App) setWaveSource(src system.WaveSource) {
	if a.waves != nil {
		a.waves.SetSource(src)
	}
}

// specs returns the Specs resource a plugin depends on.
func (a *App) specs() (*resource.Specs, error) {
	specs, ok := ecs.Resource(a.World, resource.SpecsResource)
	if !ok {
		return nil, fmt.Errorf("app: specs not loaded, add DataLoadPlugin first")
	}
	return specs, nil
}
