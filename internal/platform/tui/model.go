package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

// Model is the Bubble Tea model hosting a game loop. Bubble Tea delivers
// every message on one goroutine, so the loop needs no locking.
type Model struct {
	loop     *loop.Loop
	keys     KeyMap
	screen   *core.Screen
	ticking  bool // A FrameMsg is in flight
	quitting bool
}

// NewModel starts the loop on a cfg-sized terminal and wraps it.
func NewModel(l *loop.Loop, keys KeyMap, cfg core.RuntimeConfig) Model {
	l.Start(cfg.ScreenW, cfg.ScreenH, time.Now())
	return Model{
		loop:    l,
		keys:    keys,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		ticking: l.FrameInterval() > 0,
	}
}

// Init starts the frame loop if the first screen needs one.
func (m Model) Init() tea.Cmd {
	if m.ticking {
		return frameCmd(m.loop.FrameInterval())
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		m.ticking = false
		m.loop.Advance(time.Time(msg))
		return m, m.resume()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent := m.keys.Map(msg)
	if m.loop.HandleIntent(intent, time.Now()) == loop.PhaseTerminated {
		m.quitting = true
		return m, tea.Quit
	}
	return m, m.resume()
}

// resume schedules the next frame unless one is pending or the screen is
// static.
func (m *Model) resume() tea.Cmd {
	if m.ticking {
		return nil
	}
	d := m.loop.FrameInterval()
	if d <= 0 {
		return nil
	}
	m.ticking = true
	return frameCmd(d)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.loop.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run plays the loop in the alternate screen until the player quits or ctx
// is cancelled. Cancellation and Ctrl+C interrupts count as a clean exit.
// Extra options are applied after the defaults.
func Run(ctx context.Context, l *loop.Loop, keys KeyMap, cfg core.RuntimeConfig, opts ...tea.ProgramOption) error {
	model := NewModel(l, keys, cfg)

	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts...)
	p := tea.NewProgram(model, opts...)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}
