package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/event"
	"golang.org/x/image/font/basicfont"
)

const (
	hoverSound  = "button_hover"
	hoverVolume = 0.9
	clickSound  = "button_click"
	clickVolume = 1.0
)

var (
	textColor  = color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	panelColor = color.NRGBA{A: 200}
)

// uiKit builds the widgets shared by the menus and the build panel. Button
// sounds go out as PlaySound events so the sound system plays them.
type uiKit struct {
	world *ecs.World
	face  ebtext.Face
	btn   *widget.ButtonImage
}

func newUIKit(w *ecs.World) *uiKit {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &uiKit{
		world: w,
		face:  face,
		btn: &widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
			Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x8c, G: 0x73, B: 0x2e, A: 0xff}),
			Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x99, G: 0x2e, B: 0x2e, A: 0xff}),
		},
	}
}

func (k *uiKit) playSound(name string, volume float64) {
	ecs.Send(k.world, event.PlaySoundEvent, event.PlaySound{Name: name, Volume: volume})
}

func (k *uiKit) text(label string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &k.face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (k *uiKit) button(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(k.btn),
		widget.ButtonOpts.Text(label, &k.face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 40),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			widget.WidgetOpts.CursorEnterHandler(func(*widget.WidgetCursorEnterEventArgs) {
				k.playSound(hoverSound, hoverVolume)
			}),
		),
		widget.ButtonOpts.PressedHandler(func(*widget.ButtonPressedEventArgs) {
			k.playSound(clickSound, clickVolume)
		}),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// centeredPanel returns a UI whose only child is a vertical panel in the middle of the screen.
func (k *uiKit) centeredPanel(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(30),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 60, Bottom: 40, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight*3/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
