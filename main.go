package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/towerdefense/app"
	"github.com/milk9111/towerdefense/assets"
	"github.com/milk9111/towerdefense/config"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the toml config file")
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "reload prefabs when they change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Game.Debug = cfg.Game.Debug || *debug
	cfg.Data.Watch = cfg.Data.Watch || *watch
	cfg.Window.BaseMonitor = cfg.Window.BaseMonitor || *baseMonitor

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Window.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.Window.TPS)

	a := app.New(cfg, logger)
	if bank, err := assets.NewSoundBank(assets.AudioContext(), cfg.Game.MasterVol); err != nil {
		logger.Warn("sound disabled", zap.Error(err))
	} else {
		a.Sounds = bank
	}

	game := NewGame(a)
	if err := a.AddPlugins(append(app.DefaultPlugins(), game)...); err != nil {
		logger.Fatal("build app", zap.Error(err))
	}
	defer a.Close()

	logger.Info("starting", zap.String("title", cfg.Window.Title), zap.Bool("debug", cfg.Game.Debug), zap.Bool("watch", cfg.Data.Watch))
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game stopped", zap.Error(err))
	}
}
