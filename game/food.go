// food.go implements food placement for a duel.

package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("no free cell for food")

// DefaultFoodAttempts bounds random sampling before the deterministic scan.
const DefaultFoodAttempts = 1000

// SpawnFood picks a cell not covered by either snake. It samples uniformly at
// random up to maxAttempts times, then falls back to the first free cell in
// row-major order. Both snakes' bodies count as occupied, dead or alive.
func SpawnFood(state *State, rng *rand.Rand, maxAttempts int) (Point, error) {
	if state == nil || state.Width <= 0 || state.Height <= 0 {
		return Point{}, fmt.Errorf("%w: empty board", ErrBoardFull)
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultFoodAttempts
	}

	occupied := make(map[Point]struct{}, 64)
	for _, s := range state.Snakes {
		if s == nil {
			continue
		}
		for i := 0; i < s.Body.Len(); i++ {
			p := s.Body.At(i)
			if state.InBounds(p) {
				occupied[p] = struct{}{}
			}
		}
	}

	if len(occupied) >= state.Width*state.Height {
		return Point{}, fmt.Errorf("%w: %d of %d cells occupied", ErrBoardFull, len(occupied), state.Width*state.Height)
	}

	if rng != nil {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			p := Point{X: rng.Intn(state.Width), Y: rng.Intn(state.Height)}
			if _, ok := occupied[p]; !ok {
				state.Stats.FoodGenerated++
				return p, nil
			}
		}
	}

	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			p := Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				state.Stats.FoodGenerated++
				return p, nil
			}
		}
	}
	return Point{}, ErrBoardFull
}
