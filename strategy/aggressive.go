package strategy

import (
	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/pathfind"
)

type AggressiveTuning struct {
	// BlockingRange: only try to cut the opponent off when it is within this
	// Manhattan distance of the food.
	BlockingRange int `yaml:"blocking_range"`
	// BlockingEfficiency scales the opponent's distance; the intercept path
	// must be strictly shorter than the product.
	BlockingEfficiency float64 `yaml:"blocking_efficiency"`
}

func DefaultAggressive() AggressiveTuning {
	return AggressiveTuning{BlockingRange: 5, BlockingEfficiency: 0.8}
}

// Aggressive tries to intercept the opponent, then goes straight for food.
type Aggressive struct {
	Tuning AggressiveTuning
	Finder pathfind.Finder
}

func (a *Aggressive) Name() string { return NameAggressive }

func (a *Aggressive) Decide(v View) game.Direction {
	if !game.InBounds(v.Width, v.Height, v.Food) || v.Self == nil || !v.Self.Alive {
		return SafeDirection(v)
	}
	head := v.Self.Head()
	blocked := v.obstacles()

	if d, ok := a.intercept(v, head, blocked); ok {
		return d
	}

	path, err := a.Finder.Path(v.Width, v.Height, head, v.Food, blocked)
	if err == nil {
		if d, ok := firstStep(head, path); ok {
			return d
		}
	}

	d, err := game.DirectionToward(head, v.Food)
	if err != nil {
		return SafeDirection(v)
	}
	next := head.Add(d)
	if !game.InBounds(v.Width, v.Height, next) {
		return SafeDirection(v)
	}
	if v.opponentAlive() && next == v.Opponent.Head() {
		return SafeDirection(v)
	}
	return d
}

func (a *Aggressive) intercept(v View, head game.Point, blocked pathfind.Set) (game.Direction, bool) {
	if !v.opponentAlive() {
		return game.Up, false
	}
	oppHead := v.Opponent.Head()
	oppDist := game.Manhattan(oppHead, v.Food)
	if oppDist > a.Tuning.BlockingRange {
		return game.Up, false
	}
	target, ok := BlockingPosition(v.Width, v.Height, oppHead, v.Food)
	if !ok {
		return game.Up, false
	}
	path, err := a.Finder.Path(v.Width, v.Height, head, target, blocked)
	if err != nil || len(path) == 0 {
		return game.Up, false
	}
	if float64(len(path)) < float64(oppDist)*a.Tuning.BlockingEfficiency {
		return firstStep(head, path)
	}
	return game.Up, false
}

// BlockingPosition is the integer midpoint between the opponent's head and
// the food. If that is off the board the first on-board neighbor of the food
// is used instead.
func BlockingPosition(width, height int, oppHead, food game.Point) (game.Point, bool) {
	mid := game.Point{X: floorHalf(oppHead.X + food.X), Y: floorHalf(oppHead.Y + food.Y)}
	if game.InBounds(width, height, mid) {
		return mid, true
	}
	for _, off := range []game.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}} {
		p := game.Point{X: food.X + off.X, Y: food.Y + off.Y}
		if game.InBounds(width, height, p) {
			return p, true
		}
	}
	return game.Point{}, false
}

func floorHalf(v int) int {
	if v < 0 {
		return (v - 1) / 2
	}
	return v / 2
}
