package snake

import "math/rand"

// spawnAttemptsPerCell bounds random sampling before the free-cell scan.
const spawnAttemptsPerCell = 4

// FoodSource proposes candidate food cells on a width x height grid.
// Candidates may be occupied or off-grid; the model rejects them.
type FoodSource interface {
	Next(width, height int) Position
}

// FoodSourceFunc adapts a function to FoodSource.
type FoodSourceFunc func(width, height int) Position

// Next calls f.
func (f FoodSourceFunc) Next(width, height int) Position {
	return f(width, height)
}

// RandomSource samples cells uniformly from the whole grid.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource wraps rng.
func NewRandomSource(rng *rand.Rand) *RandomSource {
	return &RandomSource{rng: rng}
}

// Next returns a uniformly random cell.
func (s *RandomSource) Next(width, height int) Position {
	return Position{X: s.rng.Intn(width), Y: s.rng.Intn(height)}
}

// SpawnFood moves the food to a free cell. Random candidates are tried first;
// once the attempt budget is spent the grid is scanned row by row and the
// first free cell wins. Returns false if the snake covers the whole grid.
func (m *Model) SpawnFood() bool {
	attempts := spawnAttemptsPerCell * m.bounds.Area()
	for range attempts {
		p := m.source.Next(m.cfg.Width, m.cfg.Height)
		if m.InBounds(p) && !m.Occupies(p) {
			m.food = p
			m.hasFood = true
			return true
		}
	}

	for y := 0; y < m.cfg.Height; y++ {
		for x := 0; x < m.cfg.Width; x++ {
			p := Position{X: x, Y: y}
			if !m.Occupies(p) {
				m.food = p
				m.hasFood = true
				return true
			}
		}
	}

	m.food = Position{X: -1, Y: -1}
	m.hasFood = false
	return false
}
