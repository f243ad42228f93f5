package loop

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Text of the screens owned by the loop.
const (
	VictoryTitle   = "CONGRATULATIONS! You reached the goal."
	VictoryPrompt  = "Press r to play again or q to quit."
	ResizeAdvice   = "Resize the terminal and try again."
	tooSmallFormat = "Terminal too small. Need at least %dx%d (cols x rows)."
)

// drawTooSmall draws the notice shown when the terminal cannot fit the grid.
func drawTooSmall(dst *core.Screen, cfg snake.Config) {
	dst.Clear()
	cols, rows := snake.MinTerminalSize(cfg)
	dst.DrawTextColored(0, 0, fmt.Sprintf(tooSmallFormat, cols, rows), core.ColorYellow)
	dst.DrawText(0, 2, ResizeAdvice)
}

// drawVictory draws the static victory screen with the flag.
func drawVictory(dst *core.Screen, flag string) {
	dst.Clear()
	dst.DrawTextColored(0, 0, VictoryTitle, core.ColorBrightYellow)
	dst.DrawText(0, 2, "Flag: ")
	dst.DrawTextColored(6, 2, flag, core.ColorCyan)
	dst.DrawText(0, 4, VictoryPrompt)
}
