package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
	Game    GameConfig    `toml:"game"`
	Data    DataConfig    `toml:"data"`
}

type WindowConfig struct {
	Title       string `toml:"title"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Fullscreen  bool   `toml:"fullscreen"`
	BaseMonitor bool   `toml:"base_monitor"` // first monitor instead of primary
	TPS         int    `toml:"tps"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type GameConfig struct {
	Lives      int     `toml:"lives"`
	MasterVol  float64 `toml:"master_volume"`
	Debug      bool    `toml:"debug"`
	RandomSeed int64   `toml:"random_seed"` // 0 seeds from the clock
	WaveScript string  `toml:"wave_script"`
	SkipMenu   bool    `toml:"skip_menu"` // start in game instead of the main menu
}

type DataConfig struct {
	Towers    string `toml:"towers"`
	PrefabDir string `toml:"prefab_dir"`
	Watch     bool   `toml:"watch"`
}

// Load reads a toml file over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "towerdefense",
			Width:  1280,
			Height: 720,
			TPS:    60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Game: GameConfig{
			Lives:      10,
			MasterVol:  1,
			WaveScript: "scripts/waves.tengo",
		},
		Data: DataConfig{
			Towers:    "towers.json",
			PrefabDir: "prefabs",
		},
	}
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}
	if c.Game.Lives <= 0 {
		return fmt.Errorf("game lives must be positive, got %d", c.Game.Lives)
	}
	if c.Game.MasterVol < 0 {
		return fmt.Errorf("game master_volume must not be negative, got %v", c.Game.MasterVol)
	}
	return nil
}
