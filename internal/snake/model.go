// Package snake implements the Snake grid model: the snake body, its heading,
// the food cell, the score and the terminal game states. The model is pure
// and advances only when Step is called.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Default rules. Tests rely on these values.
const (
	DefaultWidth        = 30
	DefaultHeight       = 20
	DefaultWinningScore = 10
)

// Config holds the grid dimensions and the score that wins the game.
type Config struct {
	Width        int
	Height       int
	WinningScore int
}

// DefaultConfig returns the standard 30x20 grid with a winning score of 10.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		WinningScore: DefaultWinningScore,
	}
}

// Position is a grid cell.
type Position struct {
	X, Y int
}

// Add returns the cell one step away in direction d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Direction is a unit step with exactly one non-zero component.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFor converts a steering intent to a direction.
func DirectionFor(in core.Intent) (Direction, bool) {
	switch in {
	case core.IntentUp:
		return Up, true
	case core.IntentDown:
		return Down, true
	case core.IntentLeft:
		return Left, true
	case core.IntentRight:
		return Right, true
	}
	return Direction{}, false
}

// State is the lifecycle state of a round.
type State int

const (
	Running State = iota
	GameOver
	Victory
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	case Victory:
		return "victory"
	default:
		return "unknown"
	}
}

// Model is the Snake grid model.
type Model struct {
	cfg    Config
	bounds core.Rect
	source FoodSource
	tick   uint64

	// Snake state, head at index 0
	snake     []Position
	direction Direction // Applied on the last step
	pending   Direction // Used by the next step

	food    Position
	hasFood bool
	score   int
	state   State
}

// Option customizes a Model.
type Option func(*Model)

// WithFoodSource replaces the random food sampler.
func WithFoodSource(src FoodSource) Option {
	return func(m *Model) {
		m.source = src
	}
}

// New creates a model for cfg and resets it. The seed drives the default
// food sampler.
func New(cfg Config, seed int64, opts ...Option) *Model {
	m := &Model{
		cfg:    cfg,
		bounds: core.NewRect(0, 0, cfg.Width, cfg.Height),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.source == nil {
		m.source = NewRandomSource(rand.New(rand.NewSource(seed)))
	}
	m.Reset()
	return m
}

// Reset places a one-segment snake at the grid center heading right, clears
// the score and spawns food.
func (m *Model) Reset() {
	cx, cy := m.bounds.Center()
	m.snake = []Position{{X: cx, Y: cy}}
	m.direction = Right
	m.pending = Right
	m.score = 0
	m.tick = 0
	m.state = Running
	m.SpawnFood()
}

// ChangeDirection sets the heading for the next step. A direction that
// reverses either the pending heading or the last applied one is ignored.
func (m *Model) ChangeDirection(d Direction) {
	if d == m.pending.Opposite() || d == m.direction.Opposite() {
		return
	}
	m.pending = d
}

// Step advances the snake by one cell and returns the resulting state.
// It does nothing unless the model is Running.
func (m *Model) Step() State {
	if m.state != Running {
		return m.state
	}
	m.tick++

	m.direction = m.pending
	newHead := m.snake[0].Add(m.direction)

	if !m.bounds.Contains(newHead.X, newHead.Y) || m.Occupies(newHead) {
		m.state = GameOver
		return m.state
	}

	m.snake = append(m.snake, Position{})
	copy(m.snake[1:], m.snake)
	m.snake[0] = newHead

	if m.hasFood && newHead == m.food {
		m.score++
		if m.score >= m.cfg.WinningScore {
			// The round ends on the spot: food eaten, no respawn, tail kept.
			m.hasFood = false
			m.state = Victory
			return m.state
		}
		m.SpawnFood()
		return m.state
	}

	m.snake = m.snake[:len(m.snake)-1]
	return m.state
}

// Occupies reports whether any snake segment covers p.
func (m *Model) Occupies(p Position) bool {
	for _, seg := range m.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// InBounds reports whether p lies on the grid.
func (m *Model) InBounds(p Position) bool {
	return m.bounds.Contains(p.X, p.Y)
}

// Config returns the grid configuration.
func (m *Model) Config() Config { return m.cfg }

// State returns the current round state.
func (m *Model) State() State { return m.state }

// Score returns the food eaten this round.
func (m *Model) Score() int { return m.score }

// Direction returns the heading the next step will use.
func (m *Model) Direction() Direction { return m.pending }

// Head returns the head segment.
func (m *Model) Head() Position { return m.snake[0] }

// Len returns the number of snake segments.
func (m *Model) Len() int { return len(m.snake) }

// Ticks returns the number of steps taken while running.
func (m *Model) Ticks() uint64 { return m.tick }

// Snake returns a copy of the segments, head first.
func (m *Model) Snake() []Position {
	out := make([]Position, len(m.snake))
	copy(out, m.snake)
	return out
}

// Food returns the food cell. ok is false when the grid had no free cell.
func (m *Model) Food() (p Position, ok bool) {
	return m.food, m.hasFood
}
