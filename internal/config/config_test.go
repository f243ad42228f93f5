package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	sc := cfg.Snake()

	if sc.Width != 30 || sc.Height != 20 || sc.WinningScore != 10 {
		t.Errorf("Snake() = %+v, expected 30x20 winning at 10", sc)
	}
	if cfg.Timing.TickInterval != 120*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 120ms", cfg.Timing.TickInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := parse([]byte("grid:\n  width: 40\ntiming:\n  tick_interval: 80ms\n"))
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}
	if cfg.Grid.Width != 40 {
		t.Errorf("Width = %d, expected 40", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 20 {
		t.Errorf("Height = %d, expected default 20", cfg.Grid.Height)
	}
	if cfg.Timing.TickInterval != 80*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 80ms", cfg.Timing.TickInterval)
	}
	if cfg.Rules.WinningScore != 10 {
		t.Errorf("WinningScore = %d, expected default 10", cfg.Rules.WinningScore)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Grid.Width = 0 }, "grid must be positive"},
		{"negative score", func(c *Config) { c.Rules.WinningScore = -1 }, "winning_score must be positive"},
		{"score too large", func(c *Config) { c.Grid.Width, c.Grid.Height = 3, 3 }, "does not fit"},
		{"zero tick", func(c *Config) { c.Timing.TickInterval = 0 }, "tick_interval"},
		{"zero poll", func(c *Config) { c.Timing.PollInterval = 0 }, "poll_interval"},
		{"zero idle", func(c *Config) { c.Timing.IdleInterval = 0 }, "idle_interval"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, expected to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  winning_score: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Rules.WinningScore != 5 {
		t.Errorf("WinningScore = %d, expected 5", cfg.Rules.WinningScore)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); err == nil {
		t.Error("Load() of an invalid config should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected defaults", cfg)
	}

	userPath := filepath.Join(home, ".snake", "snake.yaml")
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(userPath, []byte("grid:\n  height: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != userPath {
		t.Errorf("source = %q, expected %q", source, userPath)
	}
	if cfg.Grid.Height != 25 {
		t.Errorf("Height = %d, expected 25", cfg.Grid.Height)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.snake/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if expected := filepath.Join(home, ".snake", "scores.db"); got != expected {
		t.Errorf("ExpandPath() = %q, expected %q", got, expected)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SNAKE_TEST_VALUE", "set")
	if got := GetEnv("SNAKE_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, expected %q", got, "set")
	}

	t.Setenv("SNAKE_TEST_VALUE", "")
	if got := GetEnv("SNAKE_TEST_VALUE", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() with empty value = %q, expected fallback", got)
	}

	if got := GetEnv("SNAKE_TEST_UNSET_VALUE", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() unset = %q, expected fallback", got)
	}
}
