package pathfind

import (
	"fmt"
	"strings"

	"github.com/brensch/snekduel/game"
)

type Algorithm int

const (
	AlgorithmBFS Algorithm = iota
	AlgorithmAStar
)

func (a Algorithm) String() string {
	if a == AlgorithmAStar {
		return "astar"
	}
	return "bfs"
}

// ParseAlgorithm accepts "bfs", "astar" or "a*".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bfs":
		return AlgorithmBFS, nil
	case "astar", "a*":
		return AlgorithmAStar, nil
	}
	return AlgorithmBFS, fmt.Errorf("unknown pathfinding algorithm %q", s)
}

// Finder picks an algorithm and node bound. The zero value is an unbounded BFS.
type Finder struct {
	Algorithm Algorithm
	MaxNodes  int
}

// Path searches from start to target over blocked.
func (f Finder) Path(width, height int, start, target game.Point, blocked Set) ([]game.Point, error) {
	if f.Algorithm == AlgorithmAStar {
		return AStar(width, height, start, target, blocked, f.MaxNodes)
	}
	return BFS(width, height, start, target, blocked, f.MaxNodes)
}

// PathFor searches on behalf of self, deriving the obstacle set from both bodies.
func (f Finder) PathFor(width, height int, self, other *game.Snake, target game.Point) ([]game.Point, error) {
	return f.Path(width, height, self.Head(), target, Obstacles(self, other))
}
