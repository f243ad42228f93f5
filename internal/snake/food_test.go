package snake

import "testing"

func TestFoodSpawnValidity(t *testing.T) {
	m := New(DefaultConfig(), 999)
	m.snake = []Position{{X: 15, Y: 10}, {X: 14, Y: 10}, {X: 13, Y: 10}, {X: 12, Y: 10}}

	for i := 0; i < 200; i++ {
		if !m.SpawnFood() {
			t.Fatal("SpawnFood() = false on a mostly empty grid")
		}
		food, _ := m.Food()
		if m.Occupies(food) {
			t.Errorf("food spawned on snake at (%d, %d)", food.X, food.Y)
		}
		if !m.InBounds(food) {
			t.Errorf("food spawned out of bounds at (%d, %d)", food.X, food.Y)
		}
	}
}

func TestFoodSpawnFallsBackToScan(t *testing.T) {
	calls := 0
	// Always proposes the head, which is occupied.
	stuck := FoodSourceFunc(func(w, h int) Position {
		calls++
		return Position{X: w / 2, Y: h / 2}
	})
	m := New(Config{Width: 4, Height: 3, WinningScore: 10}, 0, WithFoodSource(stuck))

	food, ok := m.Food()
	if !ok {
		t.Fatal("food should be placed by the scan fallback")
	}
	if food != (Position{X: 0, Y: 0}) {
		t.Errorf("food = %+v, expected first free cell (0, 0)", food)
	}
	if expected := spawnAttemptsPerCell * 12; calls != expected {
		t.Errorf("sampler called %d times, expected %d", calls, expected)
	}
}

func TestFoodSpawnRejectsOffGrid(t *testing.T) {
	proposals := []Position{{X: -1, Y: 0}, {X: 9, Y: 9}, {X: 1, Y: 1}}
	i := 0
	src := FoodSourceFunc(func(_, _ int) Position {
		p := proposals[i%len(proposals)]
		i++
		return p
	})
	m := New(Config{Width: 4, Height: 3, WinningScore: 10}, 0, WithFoodSource(src))

	if food, _ := m.Food(); food != (Position{X: 1, Y: 1}) {
		t.Errorf("food = %+v, expected (1, 1)", food)
	}
}

func TestFoodSpawnFullGrid(t *testing.T) {
	m := New(Config{Width: 2, Height: 1, WinningScore: 10}, 0)
	m.snake = []Position{{X: 0, Y: 0}, {X: 1, Y: 0}}

	if m.SpawnFood() {
		t.Error("SpawnFood() = true with no free cell")
	}
	if _, ok := m.Food(); ok {
		t.Error("food should be cleared when the grid is full")
	}
}
