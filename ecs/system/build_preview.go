package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/entity"
	"github.com/milk9111/towerdefense/ecs/resource"
)

var (
	previewOK      = color.NRGBA{R: 0x40, G: 0xe0, B: 0x60, A: 0x90}
	previewBlocked = color.NRGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0x90}
)

// BuildPreviewSystem marks the ground under the cursor in build mode, red when
// a tower already stands too close.
type BuildPreviewSystem struct{}

func NewBuildPreviewSystem() *BuildPreviewSystem {
	return &BuildPreviewSystem{}
}

func (s *BuildPreviewSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	in, ok := ecs.Resource(w, resource.InputResource)
	if !ok || in.PointerOverUI {
		return
	}
	b := screen.Bounds()
	view, ok := entity.CameraView(w, float64(b.Dx()), float64(b.Dy()))
	if !ok {
		return
	}
	pos, ok := view.GroundPick(in.CursorX, in.CursorY)
	if !ok {
		return
	}
	sx, sy, depth, ok := view.Project(pos)
	if !ok {
		return
	}
	c := previewOK
	if TowerNear(w, pos, MinTowerSpacing) || !onGround(w, pos) {
		c = previewBlocked
	}
	r := float32(MinTowerSpacing / 2 * view.PixelScale(depth))
	vector.StrokeCircle(screen, float32(sx), float32(sy), r, 2, c, true)
}
