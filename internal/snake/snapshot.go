package snake

// Snapshot captures the observable model state for determinism tests and
// debug logging.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	State    State
}

// Snapshot returns the current model snapshot.
func (m *Model) Snapshot() Snapshot {
	head := m.Head()
	return Snapshot{
		Tick:     m.tick,
		Score:    m.score,
		SnakeLen: len(m.snake),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      m.direction,
		FoodX:    m.food.X,
		FoodY:    m.food.Y,
		State:    m.state,
	}
}
