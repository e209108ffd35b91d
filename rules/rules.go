// Package rules implements the tick transition of a duel.
//
// Step is the only mutator of a running game.State. Strategies decide on a
// snapshot, the driver hands the decisions to Step, and Step moves, feeds,
// collides and scores both snakes in one simultaneous update.
package rules

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/brensch/snekduel/game"
)

// ErrInvalidState is returned when Step is handed a state it cannot advance.
var ErrInvalidState = errors.New("invalid game state")

// Settings are the scoring and food knobs of the transition.
type Settings struct {
	FoodScore    int
	FoodAttempts int
}

func DefaultSettings() Settings {
	return Settings{FoodScore: 10, FoodAttempts: game.DefaultFoodAttempts}
}

// Step advances state by one tick. decisions[i] is the move chosen for
// state.Snakes[i] on the pre-tick board; it goes through SetDirection, so a
// reversal into the neck is ignored. A finished game is left untouched.
func Step(state *game.State, decisions [2]game.Direction, rng *rand.Rand, settings Settings, obs Observer) error {
	if state == nil || state.Snakes[0] == nil || state.Snakes[1] == nil {
		return fmt.Errorf("%w: missing snake", ErrInvalidState)
	}
	if state.Status == game.StatusGameOver {
		return nil
	}
	state.Turn++
	state.Stats.Ticks++

	for i, s := range state.Snakes {
		if s.Alive && s.Len() > 0 {
			s.SetDirection(decisions[i])
		}
	}

	eater := claimFood(state, obs)

	for i, s := range state.Snakes {
		s.Move(i == eater)
	}

	if eater >= 0 {
		if !feed(state, state.Snakes[eater], rng, settings, obs) {
			return nil
		}
	}

	collide(state, obs)
	decide(state, obs)
	return nil
}

// collide applies wall, self, head-to-head and body collisions in that order.
// Later checks only see snakes that survived the earlier ones.
func collide(state *game.State, obs Observer) {
	a, b := state.Snakes[0], state.Snakes[1]

	for _, s := range state.Snakes {
		if s.Alive && s.CheckWallCollision(state.Width, state.Height) {
			kill(state, s, CauseWall, obs)
		}
	}
	for _, s := range state.Snakes {
		if s.Alive && s.CheckSelfCollision() {
			kill(state, s, CauseSelf, obs)
		}
	}

	if !a.Alive || !b.Alive {
		return
	}
	if a.Head() == b.Head() {
		state.Stats.HeadCollisions++
		kill(state, a, CauseHead, obs)
		kill(state, b, CauseHead, obs)
		return
	}

	// Both body checks see the board before either snake is removed.
	aHit := a.CheckCollisionWith(b)
	bHit := b.CheckCollisionWith(a)
	if aHit {
		kill(state, a, CauseBody, obs)
	}
	if bHit {
		kill(state, b, CauseBody, obs)
	}
}

func kill(state *game.State, s *game.Snake, cause DeathCause, obs Observer) {
	s.Kill()
	obs.emit(Event{Kind: EventDeath, Turn: state.Turn, SnakeId: s.Id, Point: s.Head(), Cause: cause})
}

// decide ends the game once at least one snake is dead.
func decide(state *game.State, obs Observer) {
	a, b := state.Snakes[0], state.Snakes[1]
	switch {
	case a.Alive && b.Alive:
		return
	case !a.Alive && !b.Alive:
		switch {
		case a.Score > b.Score:
			state.End(game.ResultWin, a.Id)
		case b.Score > a.Score:
			state.End(game.ResultWin, b.Id)
		default:
			state.End(game.ResultTie, "")
		}
	case a.Alive:
		state.End(game.ResultWin, a.Id)
	default:
		state.End(game.ResultWin, b.Id)
	}
	obs.emit(Event{Kind: EventGameOver, Turn: state.Turn, Result: state.Result, SnakeId: state.WinnerId})
}

// Abort ends a running game with no winner, e.g. after an internal failure.
func Abort(state *game.State, err error, obs Observer) {
	if state == nil || state.Status == game.StatusGameOver {
		return
	}
	state.End(game.ResultAborted, "")
	obs.emit(Event{Kind: EventGameOver, Turn: state.Turn, Result: game.ResultAborted, Err: err})
}
