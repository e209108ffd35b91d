package strategy

import (
	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/pathfind"
)

type BalancedTuning struct {
	// PathTolerance is how many steps longer than the Manhattan distance a
	// food path may be and still be followed.
	PathTolerance int `yaml:"path_tolerance"`
	// ContestDistance: an opponent this close to the food, and closer than
	// us, is conceded the race.
	ContestDistance int `yaml:"contest_distance"`
}

func DefaultBalanced() BalancedTuning {
	return BalancedTuning{PathTolerance: 2, ContestDistance: 3}
}

// Balanced chases food along reasonably direct paths and backs off from races
// it would lose.
type Balanced struct {
	Tuning BalancedTuning
	Finder pathfind.Finder
}

func (b *Balanced) Name() string { return NameBalanced }

func (b *Balanced) Decide(v View) game.Direction {
	if !game.InBounds(v.Width, v.Height, v.Food) || v.Self == nil || !v.Self.Alive {
		return SafeDirection(v)
	}
	head := v.Self.Head()
	blocked := v.obstacles()
	myDist := game.Manhattan(head, v.Food)

	path, err := b.Finder.Path(v.Width, v.Height, head, v.Food, blocked)
	if err != nil {
		return SafeDirection(v)
	}
	if len(path) > 0 && len(path) <= myDist+b.Tuning.PathTolerance {
		if d, ok := firstStep(head, path); ok {
			return d
		}
	}

	if v.opponentAlive() {
		oppDist := game.Manhattan(v.Opponent.Head(), v.Food)
		if oppDist < myDist && oppDist <= b.Tuning.ContestDistance {
			return SafeDirection(v)
		}
	}

	d, err := game.DirectionToward(head, v.Food)
	if err == nil && pathfind.Open(v.Width, v.Height, blocked, head.Add(d)) {
		return d
	}
	return SafeDirection(v)
}
