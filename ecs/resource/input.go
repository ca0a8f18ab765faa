package resource

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/towerdefense/ecs/component"
)

// Input is the keyboard and mouse snapshot for one frame.
type Input struct {
	Keys         map[ebiten.Key]bool
	JustKeys     map[ebiten.Key]bool
	Buttons      map[ebiten.MouseButton]bool
	JustButtons  map[ebiten.MouseButton]bool
	CursorX      float64
	CursorY      float64
	WheelY       float64
	MotionX      float64
	MotionY      float64
	ScreenWidth  float64
	ScreenHeight float64
	// PointerOverUI is set by the UI layer when the cursor is over a panel,
	// so world clicks are not taken from it.
	PointerOverUI bool
}

func NewInput() *Input {
	return &Input{
		Keys:        make(map[ebiten.Key]bool),
		JustKeys:    make(map[ebiten.Key]bool),
		Buttons:     make(map[ebiten.MouseButton]bool),
		JustButtons: make(map[ebiten.MouseButton]bool),
	}
}

func (in *Input) Pressed(k ebiten.Key) bool {
	return in != nil && in.Keys[k]
}

func (in *Input) JustPressed(k ebiten.Key) bool {
	return in != nil && in.JustKeys[k]
}

func (in *Input) MousePressed(b ebiten.MouseButton) bool {
	return in != nil && in.Buttons[b]
}

func (in *Input) MouseJustPressed(b ebiten.MouseButton) bool {
	return in != nil && in.JustButtons[b]
}

// Reset clears per-frame state while keeping the maps.
func (in *Input) Reset() {
	clear(in.Keys)
	clear(in.JustKeys)
	clear(in.Buttons)
	clear(in.JustButtons)
	in.WheelY = 0
	in.MotionX = 0
	in.MotionY = 0
}

// Press records a key as held and just pressed.
func (in *Input) Press(keys ...ebiten.Key) {
	for _, k := range keys {
		in.Keys[k] = true
		in.JustKeys[k] = true
	}
}

func (in *Input) PressMouse(b ebiten.MouseButton) {
	in.Buttons[b] = true
	in.JustButtons[b] = true
}

var InputResource = component.NewResource[Input]()
