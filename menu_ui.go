package main

import (
	"github.com/ebitenui/ebitenui"
)

// NewMenuUI builds the main menu: a title with Start Game and Exit.
func NewMenuUI(k *uiKit, onStart, onExit func()) *ebitenui.UI {
	return k.centeredPanel(
		k.text("GAME MENU"),
		k.button("Start Game", 200, onStart),
		k.button("Exit", 200, onExit),
	)
}
