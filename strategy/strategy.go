// Package strategy holds the fixed heuristic policies that steer a snake.
//
// A Strategy sees a read-only View of the pre-tick board and returns one
// direction. Decide never fails: any internal problem falls back to
// SafeDirection.
package strategy

import (
	"errors"
	"fmt"

	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/pathfind"
)

// ErrUnknownStrategy is returned by New for a name not in the registry.
var ErrUnknownStrategy = errors.New("unknown strategy")

// View is everything a strategy may look at. Implementations must not mutate
// the snakes.
type View struct {
	Width    int
	Height   int
	Self     *game.Snake
	Opponent *game.Snake
	Food     game.Point
}

// ViewOf builds the view for snake i of state.
func ViewOf(state *game.State, i int) View {
	return View{
		Width:    state.Width,
		Height:   state.Height,
		Self:     state.Snakes[i],
		Opponent: state.Opponent(i),
		Food:     state.Food,
	}
}

func (v View) opponentAlive() bool {
	return v.Opponent != nil && v.Opponent.Alive && v.Opponent.Len() > 0
}

func (v View) obstacles() pathfind.Set {
	return pathfind.Obstacles(v.Self, v.Opponent)
}

type Strategy interface {
	Name() string
	Decide(v View) game.Direction
}

const (
	NameBalanced   = "Balanced"
	NameAggressive = "Aggressive"
	NameDefensive  = "Defensive"
)

// Names lists the registry in menu order.
func Names() []string {
	return []string{NameBalanced, NameAggressive, NameDefensive}
}

// Tuning collects the constants of every policy plus the path search they share.
type Tuning struct {
	Finder     pathfind.Finder
	Balanced   BalancedTuning
	Aggressive AggressiveTuning
	Defensive  DefensiveTuning
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		Balanced:   DefaultBalanced(),
		Aggressive: DefaultAggressive(),
		Defensive:  DefaultDefensive(),
	}
}

// New builds the named strategy.
func New(name string, t Tuning) (Strategy, error) {
	switch name {
	case NameBalanced:
		return &Balanced{Tuning: t.Balanced, Finder: t.Finder}, nil
	case NameAggressive:
		return &Aggressive{Tuning: t.Aggressive, Finder: t.Finder}, nil
	case NameDefensive:
		return &Defensive{Tuning: t.Defensive, Finder: t.Finder}, nil
	}
	return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownStrategy, name, Names())
}

// Next returns the registry entry after name, wrapping around.
func Next(name string) string {
	names := Names()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
