// Package pathfind finds shortest paths across the duel board.
//
// Every search runs over the obstacle set seen by one snake: the opponent's
// whole body plus its own body minus the tail, which moves out of the way on
// the same tick the head could reach it. That is a one-step approximation;
// once a snake grows mid-path the tail stays, and the searches do not model it.
package pathfind

import "github.com/brensch/snekduel/game"

// Set is a set of blocked cells.
type Set map[game.Point]struct{}

func (s Set) Has(p game.Point) bool {
	_, ok := s[p]
	return ok
}

// Obstacles returns the cells self must avoid. other's body counts whether it
// is alive or not; a corpse is still a wall.
func Obstacles(self, other *game.Snake) Set {
	out := make(Set, 32)
	if other != nil {
		for i := 0; i < other.Body.Len(); i++ {
			out[other.Body.At(i)] = struct{}{}
		}
	}
	if self != nil {
		for i := 0; i < self.Body.Len()-1; i++ {
			out[self.Body.At(i)] = struct{}{}
		}
	}
	return out
}

// Open reports whether p is on the board and not blocked.
func Open(width, height int, blocked Set, p game.Point) bool {
	return game.InBounds(width, height, p) && !blocked.Has(p)
}

// Neighbors appends the open 4-neighbors of p in direction order.
func Neighbors(dst []game.Point, width, height int, blocked Set, p game.Point) []game.Point {
	for _, d := range game.Directions {
		n := p.Add(d)
		if Open(width, height, blocked, n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// SafeCells lists open cells within radius (Manhattan) of self's head,
// nearest first. The head itself is excluded.
func SafeCells(width, height int, self, other *game.Snake, radius int) []game.Point {
	if self == nil || self.Len() == 0 {
		return nil
	}
	head := self.Head()
	blocked := Obstacles(self, other)
	var out []game.Point
	for d := 1; d <= radius; d++ {
		for dx := -d; dx <= d; dx++ {
			dy := d - abs(dx)
			for _, y := range uniq(head.Y+dy, head.Y-dy) {
				p := game.Point{X: head.X + dx, Y: y}
				if Open(width, height, blocked, p) {
					out = append(out, p)
				}
			}
		}
	}
	return out
}

func uniq(a, b int) []int {
	if a == b {
		return []int{a}
	}
	return []int{a, b}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
