package main

import (
	"fmt"
	"image"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// buildUI is the tower panel shown in build mode.
type buildUI struct {
	ui       *ebitenui.UI
	panel    *widget.Container
	selected *widget.Text
}

// NewBuildUI lists one button per catalog tower along the left edge. Clicking
// one calls onSelect with its id.
func NewBuildUI(k *uiKit, ids []string, current string, onSelect func(id string)) *buildUI {
	b := &buildUI{}
	b.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	b.panel.AddChild(k.text("Tower"))
	for _, id := range ids {
		b.panel.AddChild(k.button(id, 150, func() {
			b.selected.Label = selectionLabel(id)
			onSelect(id)
		}))
	}
	b.selected = k.text(selectionLabel(current))
	b.panel.AddChild(b.selected)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(b.panel)
	b.ui = &ebitenui.UI{Container: root}
	return b
}

func selectionLabel(id string) string {
	if id == "" {
		return "none selected"
	}
	return fmt.Sprintf("selected: %s", id)
}

// Contains reports whether a screen point lies over the panel.
func (b *buildUI) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.panel.GetWidget().Rect)
}
