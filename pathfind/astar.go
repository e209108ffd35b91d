package pathfind

import (
	"container/heap"

	"github.com/brensch/snekduel/game"
)

// DefaultAStarNodes bounds A* expansions when the caller passes 0.
const DefaultAStarNodes = 1000

type node struct {
	pos  game.Point
	g, f int
	seq  int
}

type frontier []node

func (q frontier) Len() int { return len(q) }
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *frontier) Push(x any)   { *q = append(*q, x.(node)) }
func (q *frontier) Pop() any {
	old := *q
	n := old[len(old)-1]
	*q = old[:len(old)-1]
	return n
}

// AStar has the same contract as BFS but expands by f = g + Manhattan(h).
// The heuristic is consistent on a unit-cost 4-connected grid, so any path it
// returns is as short as the BFS one. More than maxNodes expansions yields no
// path; maxNodes <= 0 uses DefaultAStarNodes.
func AStar(width, height int, start, target game.Point, blocked Set, maxNodes int) ([]game.Point, error) {
	if err := checkEndpoints(width, height, start, target); err != nil {
		return nil, err
	}
	if start == target {
		return nil, nil
	}
	if maxNodes <= 0 {
		maxNodes = DefaultAStarNodes
	}

	g := map[game.Point]int{start: 0}
	parent := map[game.Point]game.Point{start: start}
	closed := make(map[game.Point]struct{}, 64)
	open := &frontier{{pos: start, g: 0, f: game.Manhattan(start, target)}}
	seq := 1
	neighbors := make([]game.Point, 0, 4)
	explored := 0

	for open.Len() > 0 && explored < maxNodes {
		cur := heap.Pop(open).(node)
		if _, done := closed[cur.pos]; done {
			continue
		}
		explored++
		if cur.pos == target {
			return walkBack(parent, start, target), nil
		}
		closed[cur.pos] = struct{}{}

		neighbors = Neighbors(neighbors[:0], width, height, blocked, cur.pos)
		for _, n := range neighbors {
			if _, done := closed[n]; done {
				continue
			}
			ng := cur.g + 1
			if old, ok := g[n]; ok && old <= ng {
				continue
			}
			g[n] = ng
			parent[n] = cur.pos
			heap.Push(open, node{pos: n, g: ng, f: ng + game.Manhattan(n, target), seq: seq})
			seq++
		}
	}
	return nil, nil
}
