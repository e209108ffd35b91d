package strategy

import (
	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/pathfind"
)

// priority orders candidate moves: keep going, then the two perpendicular
// turns in direction order, reversing last.
func priority(current game.Direction) [4]game.Direction {
	out := [4]game.Direction{current}
	i := 1
	for _, d := range game.Directions {
		if d != current && d != current.Opposite() {
			out[i] = d
			i++
		}
	}
	out[3] = current.Opposite()
	return out
}

// SafeDirection returns the first move in priority order whose target cell
// is on the board and unobstructed. A boxed-in snake keeps its current
// direction and dies next tick; there is nothing better to do.
func SafeDirection(v View) game.Direction {
	self := v.Self
	if self == nil || self.Len() == 0 || !self.Alive {
		if self == nil {
			return game.Up
		}
		return self.Direction
	}
	blocked := v.obstacles()
	head := self.Head()
	for _, d := range priority(self.Direction) {
		if pathfind.Open(v.Width, v.Height, blocked, head.Add(d)) {
			return d
		}
	}
	return self.Direction
}

// SafeDirections lists every immediately safe move in direction order.
func SafeDirections(v View, blocked pathfind.Set) []game.Direction {
	head := v.Self.Head()
	out := make([]game.Direction, 0, 4)
	for _, d := range game.Directions {
		if pathfind.Open(v.Width, v.Height, blocked, head.Add(d)) {
			out = append(out, d)
		}
	}
	return out
}

// firstStep converts a path into the move onto its first cell.
func firstStep(head game.Point, path []game.Point) (game.Direction, bool) {
	if len(path) == 0 {
		return game.Up, false
	}
	d, err := game.DirectionToward(head, path[0])
	if err != nil {
		return game.Up, false
	}
	return d, true
}

func contains(ds []game.Direction, d game.Direction) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}
