// Package game defines the core state types for a two-snake duel.
//
// These types hold everything the rules, strategies and drivers need for one
// episode. The state is cheap to clone so drivers can hand read-only
// snapshots to renderers while the match keeps ticking.
package game

import "time"

// Point is a board coordinate.
// (0,0) is the top-left cell; Y grows downward.
type Point struct {
	X int
	Y int
}

// Add returns p shifted by the unit vector of d.
func (p Point) Add(d Direction) Point {
	v := d.Vector()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "running"
}

// Result says how a finished episode ended.
type Result int

const (
	ResultNone    Result = iota // still running
	ResultWin                   // WinnerId is set
	ResultTie                   // both dead on equal score
	ResultAborted               // the episode could not continue; no winner
)

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultTie:
		return "tie"
	case ResultAborted:
		return "aborted"
	default:
		return "none"
	}
}

// Stats are the running episode counters.
type Stats struct {
	Ticks                  int
	FoodGenerated          int
	HeadCollisions         int
	SimultaneousFoodClaims int
	StartedAt              time.Time
	Duration               time.Duration
}

// State is the complete state of one episode.
type State struct {
	Width    int
	Height   int
	Snakes   [2]*Snake
	Food     Point
	Turn     int
	Status   Status
	Result   Result
	WinnerId string
	Stats    Stats
}

// NewState returns an empty running state of the given size.
func NewState(width, height int) *State {
	return &State{Width: width, Height: height}
}

// InBounds reports whether p lies on this board.
func (s *State) InBounds(p Point) bool {
	return InBounds(s.Width, s.Height, p)
}

// Snake returns the snake with the given id, or nil.
func (s *State) Snake(id string) *Snake {
	for _, sn := range s.Snakes {
		if sn != nil && sn.Id == id {
			return sn
		}
	}
	return nil
}

// Opponent returns the other snake of the pair.
func (s *State) Opponent(i int) *Snake {
	return s.Snakes[1-i]
}

// Winner returns the winning snake, or nil on a tie, abort or running game.
func (s *State) Winner() *Snake {
	if s.Result != ResultWin {
		return nil
	}
	return s.Snake(s.WinnerId)
}

// Occupied reports whether p is covered by either snake's body, dead or alive.
func (s *State) Occupied(p Point) bool {
	for _, sn := range s.Snakes {
		if sn != nil && sn.Contains(p) {
			return true
		}
	}
	return false
}

// End marks the episode finished.
func (s *State) End(result Result, winnerId string) {
	s.Status = StatusGameOver
	s.Result = result
	s.WinnerId = winnerId
}

// Clone performs a deep copy of the game state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	out := *s
	for i, sn := range s.Snakes {
		out.Snakes[i] = sn.Clone()
	}
	return &out
}
