package core

import "time"

// RuntimeConfig describes the host surface a game session starts on.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in columns
	ScreenH int   // Terminal height in rows
	Seed    int64 // RNG seed for food placement
}

// DefaultConfig returns a RuntimeConfig for a classic 80x24 terminal, seeded
// from the clock. Callers override the size once the real terminal is known.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    time.Now().UnixNano(),
	}
}
