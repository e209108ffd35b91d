package pathfind

import (
	"fmt"

	"github.com/brensch/snekduel/game"
)

// BFS returns the fewest-step path from start to target, excluding start and
// including target. Among equal-length paths the one found first by
// direction-order expansion wins; callers should not rely on which.
//
// An unreachable target, or one not reached within maxNodes expansions
// (maxNodes <= 0 means unbounded), yields a nil path and nil error.
func BFS(width, height int, start, target game.Point, blocked Set, maxNodes int) ([]game.Point, error) {
	if err := checkEndpoints(width, height, start, target); err != nil {
		return nil, err
	}
	if start == target {
		return nil, nil
	}

	parent := map[game.Point]game.Point{start: start}
	queue := []game.Point{start}
	neighbors := make([]game.Point, 0, 4)
	explored := 0

	for head := 0; head < len(queue); head++ {
		if maxNodes > 0 && explored >= maxNodes {
			return nil, nil
		}
		cur := queue[head]
		explored++

		neighbors = Neighbors(neighbors[:0], width, height, blocked, cur)
		for _, n := range neighbors {
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = cur
			if n == target {
				return walkBack(parent, start, target), nil
			}
			queue = append(queue, n)
		}
	}
	return nil, nil
}

func walkBack(parent map[game.Point]game.Point, start, target game.Point) []game.Point {
	var path []game.Point
	for p := target; p != start; p = parent[p] {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func checkEndpoints(width, height int, start, target game.Point) error {
	if err := game.CheckBounds(width, height, start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if err := game.CheckBounds(width, height, target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	return nil
}
