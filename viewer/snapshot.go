package viewer

import (
	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/match"
	"github.com/brensch/snekduel/pathfind"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Snake struct {
	Id        string  `json:"id"`
	Name      string  `json:"name"`
	Strategy  string  `json:"strategy"`
	Alive     bool    `json:"alive"`
	Score     int     `json:"score"`
	Direction string  `json:"direction"`
	Body      []Point `json:"body"`
	SafeCells int     `json:"safe_cells"`
}

// Snapshot is the wire form of a game state.
type Snapshot struct {
	MatchID  string  `json:"match_id"`
	Turn     int     `json:"turn"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Status   string  `json:"status"`
	Result   string  `json:"result"`
	WinnerId string  `json:"winner_id,omitempty"`
	Food     Point   `json:"food"`
	Snakes   []Snake `json:"snakes"`
}

const safeRadius = 3

func toPoint(p game.Point) Point { return Point{X: p.X, Y: p.Y} }

func snapshotOf(m *match.Match) Snapshot {
	state := m.State()
	if state == nil {
		return Snapshot{}
	}
	names := m.StrategyNames()
	out := Snapshot{
		MatchID:  m.ID,
		Turn:     state.Turn,
		Width:    state.Width,
		Height:   state.Height,
		Status:   state.Status.String(),
		Result:   state.Result.String(),
		WinnerId: state.WinnerId,
		Food:     toPoint(state.Food),
	}
	for i, s := range state.Snakes {
		if s == nil {
			continue
		}
		body := make([]Point, 0, s.Len())
		for _, p := range s.Points() {
			body = append(body, toPoint(p))
		}
		out.Snakes = append(out.Snakes, Snake{
			Id:        s.Id,
			Name:      s.Name,
			Strategy:  names[i],
			Alive:     s.Alive,
			Score:     s.Score,
			Direction: s.Direction.String(),
			Body:      body,
			SafeCells: len(pathfind.SafeCells(state.Width, state.Height, s, state.Opponent(i), safeRadius)),
		})
	}
	return out
}

// cells lays the snapshot out row by row as CSS classes for the HTML page.
func (s Snapshot) cells() [][]string {
	grid := make([][]string, s.Height)
	for y := range grid {
		grid[y] = make([]string, s.Width)
		for x := range grid[y] {
			grid[y][x] = "empty"
		}
	}
	set := func(p Point, class string) {
		if p.Y >= 0 && p.Y < s.Height && p.X >= 0 && p.X < s.Width {
			grid[p.Y][p.X] = class
		}
	}
	set(s.Food, "food")
	for i, sn := range s.Snakes {
		prefix := "s" + string(rune('1'+i))
		if !sn.Alive {
			prefix = "dead"
		}
		for j := len(sn.Body) - 1; j >= 0; j-- {
			class := prefix + " body"
			if j == 0 {
				class = prefix + " head"
			}
			set(sn.Body[j], class)
		}
	}
	return grid
}
