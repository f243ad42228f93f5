package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs drawn by Render.
const (
	GlyphBorder = '#'
	GlyphFood   = '*'
	GlyphHead   = '@'
	GlyphBody   = 'o'
)

// GameOverText is shown under the status line once the snake has crashed.
const GameOverText = "GAME OVER! Press r to restart or q to quit."

// MinTerminalSize returns the smallest terminal, in columns and rows, that
// fits the bordered grid, the status line and the game over line.
func MinTerminalSize(cfg Config) (cols, rows int) {
	return cfg.Width + 4, cfg.Height + 6
}

// StatusRow returns the screen row of the status line.
func StatusRow(cfg Config) int {
	return cfg.Height + 3
}

// Render projects the model onto dst: a border around the grid, the food,
// the snake and a status line ending with hints. The grid cell (x, y) lands
// on screen cell (x+1, y+1).
func Render(dst *core.Screen, m *Model, hints string) {
	dst.Clear()
	cfg := m.Config()

	renderBorder(dst, cfg)

	if food, ok := m.Food(); ok {
		dst.SetColored(food.X+1, food.Y+1, GlyphFood, core.ColorRed)
	}

	renderSnake(dst, m)

	status := fmt.Sprintf("Score: %d / %d", m.Score(), cfg.WinningScore)
	if hints != "" {
		status += "    " + hints
	}
	dst.DrawText(0, StatusRow(cfg), status)

	if m.State() == GameOver {
		dst.DrawTextColored(0, StatusRow(cfg)+2, GameOverText, core.ColorYellow)
	}
}

func renderBorder(dst *core.Screen, cfg Config) {
	w := cfg.Width + 2
	h := cfg.Height + 2
	dst.DrawHLine(0, 0, w, GlyphBorder, core.ColorGray)
	dst.DrawHLine(0, h-1, w, GlyphBorder, core.ColorGray)
	dst.DrawVLine(0, 1, h-2, GlyphBorder, core.ColorGray)
	dst.DrawVLine(w-1, 1, h-2, GlyphBorder, core.ColorGray)
}

// renderSnake draws the body first so the head always wins its cell.
func renderSnake(dst *core.Screen, m *Model) {
	body := m.Snake()
	for i := len(body) - 1; i > 0; i-- {
		dst.SetColored(body[i].X+1, body[i].Y+1, GlyphBody, core.ColorGreen)
	}
	head := body[0]
	dst.SetColored(head.X+1, head.Y+1, GlyphHead, core.ColorBrightGreen)
}
