package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSpawnFood_NeverOnBody(t *testing.T) {
	state := NewState(10, 10)
	state.Snakes[0] = NewSnakeWithBody("a", Right, Point{2, 2}, Point{1, 2}, Point{0, 2})
	state.Snakes[1] = NewSnakeWithBody("b", Left, Point{7, 2}, Point{8, 2})
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		p, err := SpawnFood(state, rng, DefaultFoodAttempts)
		if err != nil {
			t.Fatal(err)
		}
		if !state.InBounds(p) || state.Occupied(p) {
			t.Fatalf("bad food cell %v", p)
		}
	}
	if state.Stats.FoodGenerated != 500 {
		t.Fatalf("food generated=%d", state.Stats.FoodGenerated)
	}
}

func TestSpawnFood_FallsBackToRowMajorScan(t *testing.T) {
	// 3x2 board with everything but (2,0) and (0,1) taken. Without an rng
	// only the scan runs; row-major order finds (2,0) first.
	state := NewState(3, 2)
	state.Snakes[0] = NewSnakeWithBody("a", Right, Point{0, 0}, Point{1, 0})
	state.Snakes[1] = NewSnakeWithBody("b", Left, Point{2, 1}, Point{1, 1})

	p, err := SpawnFood(state, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p != (Point{2, 0}) {
		t.Fatalf("food=%v want (2,0)", p)
	}
	logState(t, "scan fallback", state)
}

func TestSpawnFood_DeadBodiesStayOccupied(t *testing.T) {
	state := NewState(2, 1)
	state.Snakes[0] = NewSnakeWithBody("a", Right, Point{0, 0})
	state.Snakes[1] = NewSnakeWithBody("b", Left, Point{1, 0})
	state.Snakes[1].Alive = false

	_, err := SpawnFood(state, rand.New(rand.NewSource(1)), 10)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err=%v want ErrBoardFull", err)
	}
}

func TestStateClone_IsDeep(t *testing.T) {
	state := NewState(5, 5)
	state.Snakes[0] = NewSnakeWithBody("a", Right, Point{1, 1})
	state.Snakes[1] = NewSnakeWithBody("b", Left, Point{3, 3})
	state.Food = Point{2, 2}

	c := state.Clone()
	state.Snakes[0].Move(true)
	state.Food = Point{0, 0}
	if c.Snakes[0].Len() != 1 || c.Food != (Point{2, 2}) {
		t.Fatal("clone shares state with original")
	}
}
