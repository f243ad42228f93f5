// Package loop drives a snake round through its screens: the size check,
// play, game over and victory. It is host-agnostic; the platform layer feeds
// it key intents and clock readings from a single goroutine and draws the
// screen it renders.
package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/reward"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Phase is the screen the loop is on.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseTooSmall           // Notice shown, waiting for any key
	PhasePlaying
	PhaseGameOver
	PhaseVictory // Flag shown, waiting for restart or quit
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseTooSmall:
		return "too_small"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Recorder stores finished games.
type Recorder interface {
	SaveScore(score int, outcome string) (int64, error)
}

// Options configures a Loop.
type Options struct {
	TickInterval time.Duration // Time between snake moves
	PollInterval time.Duration // Redraw cadence while playing
	IdleInterval time.Duration // Redraw cadence on the game over screen

	Reward   reward.Provider // Called once on entering the victory screen
	Recorder Recorder        // Optional
	Logger   *log.Logger     // Optional
	Hints    string          // Control hints for the status line
}

// Loop is the game orchestrator. It owns the model for its whole life.
type Loop struct {
	model  *snake.Model
	sched  *Scheduler
	opts   Options
	logger *log.Logger

	phase Phase
	flag  string
}

// New creates a loop around model. Call Start before feeding it input.
func New(model *snake.Model, opts Options) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Reward == nil {
		opts.Reward = func() string { return reward.Placeholder }
	}
	return &Loop{
		model:  model,
		sched:  NewScheduler(opts.TickInterval, time.Time{}),
		opts:   opts,
		logger: logger,
		phase:  PhaseInitializing,
	}
}

// Start checks the terminal size and enters play, or the too-small notice.
func (l *Loop) Start(cols, rows int, now time.Time) Phase {
	if l.phase != PhaseInitializing {
		return l.phase
	}
	minCols, minRows := snake.MinTerminalSize(l.model.Config())
	if cols < minCols || rows < minRows {
		l.logger.Warn("terminal too small", "cols", cols, "rows", rows, "need_cols", minCols, "need_rows", minRows)
		l.setPhase(PhaseTooSmall)
		return l.phase
	}
	l.sched.Reset(now)
	l.setPhase(PhasePlaying)
	return l.phase
}

// HandleIntent applies one key event. IntentNone stands for a key with no
// binding; it still dismisses the too-small notice.
func (l *Loop) HandleIntent(in core.Intent, now time.Time) Phase {
	switch l.phase {
	case PhaseTooSmall:
		l.setPhase(PhaseTerminated)

	case PhasePlaying:
		if in == core.IntentQuit {
			l.setPhase(PhaseTerminated)
			break
		}
		if d, ok := snake.DirectionFor(in); ok {
			l.model.ChangeDirection(d)
		}

	case PhaseGameOver, PhaseVictory:
		switch in {
		case core.IntentRestart:
			l.restart(now)
		case core.IntentQuit:
			l.setPhase(PhaseTerminated)
		}
	}
	return l.phase
}

// Advance runs one host loop iteration: it steps the model if a tick is due
// and moves to the end screens when the round finishes.
func (l *Loop) Advance(now time.Time) Phase {
	if l.phase != PhasePlaying {
		return l.phase
	}
	if !l.sched.ShouldTick(now, l.model.State() == snake.Running) {
		return l.phase
	}

	switch l.model.Step() {
	case snake.GameOver:
		l.finish(storage.OutcomeGameOver)
		l.setPhase(PhaseGameOver)
	case snake.Victory:
		l.finish(storage.OutcomeVictory)
		l.flag = l.opts.Reward()
		l.logger.Info("flag revealed", "length", len(l.flag))
		l.setPhase(PhaseVictory)
	}
	return l.phase
}

// FrameInterval returns how long the host should wait before the next
// Advance. Zero means the current screen is static and only a key event can
// change it.
func (l *Loop) FrameInterval() time.Duration {
	switch l.phase {
	case PhasePlaying:
		return l.opts.PollInterval
	case PhaseGameOver:
		return l.opts.IdleInterval
	default:
		return 0
	}
}

// Render draws the current screen into dst.
func (l *Loop) Render(dst *core.Screen) {
	switch l.phase {
	case PhaseTooSmall:
		drawTooSmall(dst, l.model.Config())
	case PhasePlaying, PhaseGameOver:
		snake.Render(dst, l.model, l.opts.Hints)
	case PhaseVictory:
		drawVictory(dst, l.flag)
	default:
		dst.Clear()
	}
}

// Phase returns the current phase.
func (l *Loop) Phase() Phase { return l.phase }

// Model returns the grid model.
func (l *Loop) Model() *snake.Model { return l.model }

// Flag returns the flag shown on the victory screen, empty otherwise.
func (l *Loop) Flag() string { return l.flag }

func (l *Loop) restart(now time.Time) {
	l.model.Reset()
	l.sched.Reset(now)
	l.flag = ""
	l.logger.Info("round restarted")
	l.setPhase(PhasePlaying)
}

// finish records the round. Storage problems never interrupt the game.
func (l *Loop) finish(outcome string) {
	snap := l.model.Snapshot()
	l.logger.Info("round finished", "outcome", outcome, "score", snap.Score, "length", snap.SnakeLen, "ticks", snap.Tick)
	if l.opts.Recorder == nil {
		return
	}
	if _, err := l.opts.Recorder.SaveScore(snap.Score, outcome); err != nil {
		l.logger.Warn("could not record score", "error", err)
	}
}

func (l *Loop) setPhase(p Phase) {
	if p == l.phase {
		return
	}
	l.logger.Debug("phase change", "from", l.phase, "to", p)
	l.phase = p
}
