package main

import (
	"flag"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/towerdefense/assets"
	"github.com/milk9111/towerdefense/config"
	"go.uber.org/zap"
)

// previewGame lists the synthesized effects; up/down select, enter plays.
type previewGame struct {
	bank    *assets.SoundBank
	names   []string
	current int
	volume  float64
	log     *zap.Logger
}

func (g *previewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.current = (g.current + 1) % len(g.names)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.current = (g.current + len(g.names) - 1) % len(g.names)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		name := g.names[g.current]
		if err := g.bank.Play(name, g.volume); err != nil {
			g.log.Warn("play", zap.String("sound", name), zap.Error(err))
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	var b strings.Builder
	fmt.Fprintf(&b, "volume %.2f   [up/down] select  [enter] play  [esc] quit\n\n", g.volume)
	for i, name := range g.names {
		marker := "  "
		if i == g.current {
			marker = "> "
		}
		b.WriteString(marker + name + "\n")
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 16, 16)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 512, 512
}

func main() {
	volume := flag.Float64("volume", 1, "master volume")
	flag.Parse()

	logger, err := config.NewLogger(config.LoggingConfig{Level: "info"})
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	bank, err := assets.NewSoundBank(assets.AudioContext(), *volume)
	if err != nil {
		logger.Fatal("synthesize sounds", zap.Error(err))
	}
	g := &previewGame{bank: bank, names: assets.SoundNames(), volume: 1, log: logger}

	ebiten.SetWindowSize(512, 512)
	ebiten.SetWindowTitle("Sound Preview")
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
