package rules

import (
	"fmt"

	"github.com/brensch/snekduel/game"
)

type EventKind int

const (
	EventFoodEaten EventKind = iota
	EventFoodSpawned
	EventFoodContested
	EventDeath
	EventGameOver
	EventDecisionFailed
)

var eventNames = [...]string{"food_eaten", "food_spawned", "food_contested", "death", "game_over", "decision_failed"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(k))
	}
	return eventNames[k]
}

// DeathCause says which collision check killed a snake.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseWall
	CauseSelf
	CauseHead
	CauseBody
)

func (c DeathCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseHead:
		return "head_to_head"
	case CauseBody:
		return "body"
	}
	return "none"
}

// Event is a notable thing that happened during a tick. Fields that do not
// apply to a kind are left zero.
type Event struct {
	Kind    EventKind
	Turn    int
	SnakeId string
	Point   game.Point
	Cause   DeathCause
	Result  game.Result
	Err     error
}

// Observer receives events synchronously from Step. A nil Observer is valid.
type Observer func(Event)

func (o Observer) emit(e Event) {
	if o != nil {
		o(e)
	}
}

// Multi fans events out to every non-nil observer in order.
func Multi(observers ...Observer) Observer {
	return func(e Event) {
		for _, o := range observers {
			o.emit(e)
		}
	}
}
