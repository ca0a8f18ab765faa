package system

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/component"
	"github.com/milk9111/towerdefense/ecs/resource"
)

// DebugOverlaySystem prints frame stats, states and a census of named entities.
type DebugOverlaySystem struct{}

func NewDebugOverlaySystem() *DebugOverlaySystem {
	return &DebugOverlaySystem{}
}

func (s *DebugOverlaySystem) Draw(w *ecs.World, screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, DebugSummary(w, ebiten.ActualFPS()), 8, screen.Bounds().Dy()-160)
}

// DebugSummary renders the overlay text.
func DebugSummary(w *ecs.World, fps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  entities: %d\n", fps, ecs.EntityCount(w))

	if app, ok := ecs.CurrentState(w, resource.AppStateResource); ok {
		player, _ := ecs.CurrentState(w, resource.PlayerStateResource)
		fmt.Fprintf(&b, "state: %s / %s\n", app, player)
	}
	if d, ok := ecs.Resource(w, resource.WaveDirectorResource); ok {
		fmt.Fprintf(&b, "wave: %d  spawned: %d/%d  resting: %v\n", d.Wave, d.Spawned, d.Params.Count, d.Resting)
	}
	if pw := w.PhysicsWorld(); pw != nil {
		fmt.Fprintf(&b, "hit circles: %d\n", pw.Len())
	}

	counts := map[string]int{}
	ecs.ForEach(w, component.NameComponent.Kind(), func(_ ecs.Entity, name *component.Name) {
		key := name.Value
		if i := strings.IndexByte(key, ':'); i >= 0 {
			key = key[:i]
		}
		counts[key]++
	})
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %d\n", name, counts[name])
	}
	return b.String()
}
