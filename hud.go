package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/towerdefense/common"
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/resource"
)

const hudHelp = "[WASD] move  [wheel] zoom  [middle drag] look  [B] build  [Space] pause  [Esc] menu"

// HUDText returns the status line for the current session.
func HUDText(w *ecs.World) string {
	session, ok := ecs.Resource(w, resource.SessionResource)
	if !ok {
		return ""
	}
	wave := 0
	if d, ok := ecs.Resource(w, resource.WaveDirectorResource); ok {
		wave = d.Wave
	}
	line := fmt.Sprintf("Lives: %d   Kills: %d   Wave: %d", session.Lives, session.Kills, wave)
	if player, _ := ecs.CurrentState(w, resource.PlayerStateResource); player == resource.PlayerBuild {
		line += "   BUILD"
	}
	return line
}

func drawHUD(screen *ebiten.Image, w *ecs.World, face ebtext.Face) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(16, 12)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, HUDText(w), face, op)

	op = &ebtext.DrawOptions{}
	op.GeoM.Translate(16, common.BaseHeight-24)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff})
	ebtext.Draw(screen, hudHelp, face, op)
}
