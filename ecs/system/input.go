package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/resource"
)

var watchedKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeySpace, ebiten.KeyShift, ebiten.KeyEscape, ebiten.KeyB,
}

var watchedButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle,
}

// InputSystem samples Ebiten's keyboard and mouse state into the Input resource.
type InputSystem struct {
	lastX, lastY float64
	primed       bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (s *InputSystem) Update(w *ecs.World) {
	in, ok := ecs.Resource(w, resource.InputResource)
	if !ok {
		return
	}
	overUI := in.PointerOverUI
	in.Reset()
	in.PointerOverUI = overUI

	for _, k := range watchedKeys {
		if ebiten.IsKeyPressed(k) {
			in.Keys[k] = true
		}
		if inpututil.IsKeyJustPressed(k) {
			in.JustKeys[k] = true
		}
	}
	for _, b := range watchedButtons {
		if ebiten.IsMouseButtonPressed(b) {
			in.Buttons[b] = true
		}
		if inpututil.IsMouseButtonJustPressed(b) {
			in.JustButtons[b] = true
		}
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if s.primed {
		in.MotionX = x - s.lastX
		in.MotionY = y - s.lastY
	}
	s.lastX, s.lastY, s.primed = x, y, true
	in.CursorX, in.CursorY = x, y

	_, wy := ebiten.Wheel()
	in.WheelY = wy
}
