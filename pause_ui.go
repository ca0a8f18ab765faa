package main

import (
	"github.com/ebitenui/ebitenui"
)

// NewPauseUI builds the pause menu shown while the game is paused.
func NewPauseUI(k *uiKit, onResume, onMenu func()) *ebitenui.UI {
	return k.centeredPanel(
		k.text("Paused"),
		k.button("Resume", 200, onResume),
		k.button("Main Menu", 200, onMenu),
	)
}
