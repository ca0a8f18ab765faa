package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		body    *string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "missing_file_uses_defaults",
			check: func(t *testing.T, cfg *Config) {
				if *cfg != *defaults() {
					t.Fatalf("expected defaults, got %+v", cfg)
				}
			},
		},
		{
			name: "overrides_keep_other_defaults",
			body: strPtr("[game]\nlives = 3\n[data]\nwatch = true\n"),
			check: func(t *testing.T, cfg *Config) {
				if cfg.Game.Lives != 3 || !cfg.Data.Watch {
					t.Fatalf("overrides not applied: %+v", cfg)
				}
				if cfg.Window.Width != 1280 || cfg.Data.Towers != "towers.json" {
					t.Fatalf("defaults lost: %+v", cfg)
				}
			},
		},
		{
			name:    "malformed",
			body:    strPtr("[game\nlives = 3"),
			wantErr: true,
		},
		{
			name:    "invalid_lives",
			body:    strPtr("[game]\nlives = 0\n"),
			wantErr: true,
		},
		{
			name:    "invalid_window",
			body:    strPtr("[window]\nwidth = -1\n"),
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.toml")
			if tc.body != nil {
				path = writeConfig(t, *tc.body)
			}
			cfg, err := Load(path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		cfg  LoggingConfig
		want zapcore.Level
	}{
		{LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{LoggingConfig{Level: "bogus"}, zapcore.InfoLevel},
	}
	for _, tc := range tests {
		log, err := NewLogger(tc.cfg)
		if err != nil {
			t.Fatalf("NewLogger(%+v): %v", tc.cfg, err)
		}
		if !log.Core().Enabled(tc.want) || (tc.want > zapcore.DebugLevel && log.Core().Enabled(tc.want-1)) {
			t.Fatalf("NewLogger(%+v) has wrong level", tc.cfg)
		}
	}
}

func strPtr(s string) *string {
	return &s
}
