// Package config provides YAML-based configuration for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Config contains every tunable setting of the game.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Rules   RulesConfig   `yaml:"rules"`
	Timing  TimingConfig  `yaml:"timing"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig defines win conditions.
type RulesConfig struct {
	WinningScore int `yaml:"winning_score"`
}

// TimingConfig defines the simulation and redraw cadence.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"` // Time between snake moves
	PollInterval time.Duration `yaml:"poll_interval"` // Host loop delay while playing
	IdleInterval time.Duration `yaml:"idle_interval"` // Host loop delay on the game over screen
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // Empty disables score history
}

// LogConfig defines the log file. The terminal belongs to the game, so logs
// never go to stdout or stderr while playing.
type LogConfig struct {
	Path  string `yaml:"path"` // Empty disables logging
	Level string `yaml:"level"`
}

// Snake returns the grid model configuration.
func (c Config) Snake() snake.Config {
	return snake.Config{
		Width:        c.Grid.Width,
		Height:       c.Grid.Height,
		WinningScore: c.Rules.WinningScore,
	}
}

// Validate reports settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Rules.WinningScore <= 0 {
		errs = append(errs, fmt.Errorf("winning_score must be positive, got %d", c.Rules.WinningScore))
	} else if c.Grid.Width > 0 && c.Grid.Height > 0 && c.Rules.WinningScore >= c.Grid.Width*c.Grid.Height {
		errs = append(errs, fmt.Errorf("winning_score %d does not fit a %dx%d grid",
			c.Rules.WinningScore, c.Grid.Width, c.Grid.Height))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", c.Timing.TickInterval))
	}
	if c.Timing.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll_interval must be positive, got %s", c.Timing.PollInterval))
	}
	if c.Timing.IdleInterval <= 0 {
		errs = append(errs, fmt.Errorf("idle_interval must be positive, got %s", c.Timing.IdleInterval))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
