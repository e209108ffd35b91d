package game

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidPosition is returned when a coordinate lies outside the board.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrSamePosition is returned by DirectionToward when from == to.
	ErrSamePosition = errors.New("positions are identical")
)

// Direction is one of the four cardinal moves.
type Direction int

// Enumeration order matters: neighbor expansion, safe-direction scans and
// score ties all walk directions in this order.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all moves in enumeration order.
var Directions = [4]Direction{Up, Down, Left, Right}

var directionNames = [4]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Vector is the unit displacement of d.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// ParseDirection maps a lowercase name back to a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, n := range directionNames {
		if n == s {
			return Direction(i), nil
		}
	}
	return Up, fmt.Errorf("unknown direction %q", s)
}

// InBounds is true iff p lies within [0,width) x [0,height).
func InBounds(width, height int, p Point) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// CheckBounds returns a wrapped ErrInvalidPosition when p is off the board.
func CheckBounds(width, height int, p Point) error {
	if !InBounds(width, height, p) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrInvalidPosition, p.X, p.Y, width, height)
	}
	return nil
}

func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func Euclidean(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DirectionToward picks the move from `from` toward `to`.
// Horizontal displacement is resolved first: only when dx == 0 does the
// vertical component decide.
func DirectionToward(from, to Point) (Direction, error) {
	if from == to {
		return Up, fmt.Errorf("%w: (%d,%d)", ErrSamePosition, from.X, from.Y)
	}
	dx := to.X - from.X
	dy := to.Y - from.Y
	switch {
	case dx > 0:
		return Right, nil
	case dx < 0:
		return Left, nil
	case dy > 0:
		return Down, nil
	default:
		return Up, nil
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
