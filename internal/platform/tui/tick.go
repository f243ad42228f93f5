// Package tui hosts the game loop in a Bubble Tea program: it maps keys to
// intents, paces frames and draws the screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the loop to run one host iteration.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after d.
func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
