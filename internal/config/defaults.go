package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// DefaultTickInterval is the time between snake moves.
const DefaultTickInterval = 120 * time.Millisecond

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded configuration. The embedded YAML carries the
// same values.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  snake.DefaultWidth,
			Height: snake.DefaultHeight,
		},
		Rules: RulesConfig{
			WinningScore: snake.DefaultWinningScore,
		},
		Timing: TimingConfig{
			TickInterval: DefaultTickInterval,
			PollInterval: 10 * time.Millisecond,
			IdleInterval: 50 * time.Millisecond,
		},
		Storage: StorageConfig{
			DBPath: "~/.snake/scores.db",
		},
		Log: LogConfig{
			Path:  "~/.snake/snake.log",
			Level: "info",
		},
	}
}
