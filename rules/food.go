package rules

import (
	"math/rand"

	"github.com/brensch/snekduel/game"
)

// claimFood returns the index of the snake that eats this tick, or -1.
// When both heads land on the food the higher score takes it and snake 0
// wins ties.
func claimFood(state *game.State, obs Observer) int {
	var lands [2]bool
	for i, s := range state.Snakes {
		lands[i] = s.Alive && s.Len() > 0 && s.NextHead() == state.Food
	}

	switch {
	case lands[0] && lands[1]:
		state.Stats.SimultaneousFoodClaims++
		winner := 0
		if state.Snakes[1].Score > state.Snakes[0].Score {
			winner = 1
		}
		obs.emit(Event{
			Kind:    EventFoodContested,
			Turn:    state.Turn,
			SnakeId: state.Snakes[winner].Id,
			Point:   state.Food,
		})
		return winner
	case lands[0]:
		return 0
	case lands[1]:
		return 1
	}
	return -1
}

// feed scores the eater and places new food. It reports false when the board
// has no free cell left, in which case the game has been aborted.
func feed(state *game.State, eater *game.Snake, rng *rand.Rand, settings Settings, obs Observer) bool {
	eater.Score += settings.FoodScore
	obs.emit(Event{Kind: EventFoodEaten, Turn: state.Turn, SnakeId: eater.Id, Point: state.Food})

	p, err := game.SpawnFood(state, rng, settings.FoodAttempts)
	if err != nil {
		Abort(state, err, obs)
		return false
	}
	state.Food = p
	obs.emit(Event{Kind: EventFoodSpawned, Turn: state.Turn, Point: p})
	return true
}
