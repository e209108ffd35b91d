package game

import (
	"github.com/gammazero/deque"
)

// SnakeStats tracks per-snake counters for one episode.
type SnakeStats struct {
	MovesMade  int
	FoodEaten  int
	Collisions int
}

// Snake is one competitor. Body runs head (front) to tail (back).
type Snake struct {
	Id        string
	Name      string
	Body      deque.Deque[Point]
	Direction Direction
	Alive     bool
	Score     int
	Stats     SnakeStats
}

// NewSnake creates a live single-cell snake at start facing dir.
func NewSnake(id, name string, start Point, dir Direction) *Snake {
	s := &Snake{Id: id, Name: name, Direction: dir, Alive: true}
	s.Body.PushBack(start)
	return s
}

// NewSnakeWithBody builds a snake from head-first body cells. Used by tests
// and scenario setup.
func NewSnakeWithBody(id string, dir Direction, body ...Point) *Snake {
	s := &Snake{Id: id, Name: id, Direction: dir, Alive: true}
	for _, p := range body {
		s.Body.PushBack(p)
	}
	return s
}

func (s *Snake) Head() Point { return s.Body.Front() }

func (s *Snake) Tail() Point { return s.Body.Back() }

func (s *Snake) Len() int { return s.Body.Len() }

// Points copies the body into a head-first slice.
func (s *Snake) Points() []Point {
	out := make([]Point, s.Body.Len())
	for i := range out {
		out[i] = s.Body.At(i)
	}
	return out
}

// Contains reports whether p is any body cell.
func (s *Snake) Contains(p Point) bool {
	return s.indexFrom(p, 0) >= 0
}

func (s *Snake) indexFrom(p Point, from int) int {
	for i := from; i < s.Body.Len(); i++ {
		if s.Body.At(i) == p {
			return i
		}
	}
	return -1
}

// NextHead is where the head lands if the snake moves in its current direction.
func (s *Snake) NextHead() Point {
	return s.Head().Add(s.Direction)
}

// SetDirection changes direction unless d reverses a snake longer than one
// cell back into its own neck. It reports whether the change was accepted.
func (s *Snake) SetDirection(d Direction) bool {
	if s.Body.Len() > 1 && d == s.Direction.Opposite() {
		return false
	}
	s.Direction = d
	return true
}

// Move advances the snake one cell. With grow the tail stays put.
// A dead snake does not move; the second return is false in that case.
func (s *Snake) Move(grow bool) (Point, bool) {
	if !s.Alive || s.Body.Len() == 0 {
		return Point{}, false
	}
	head := s.NextHead()
	s.Body.PushFront(head)
	if grow {
		s.Stats.FoodEaten++
	} else {
		s.Body.PopBack()
	}
	s.Stats.MovesMade++
	return head, true
}

// CheckWallCollision reports whether the head has left a width x height board.
func (s *Snake) CheckWallCollision(width, height int) bool {
	return !InBounds(width, height, s.Head())
}

// CheckSelfCollision reports whether the head overlaps the rest of the body.
// Snakes shorter than four cells cannot reach themselves.
func (s *Snake) CheckSelfCollision() bool {
	if s.Body.Len() < 4 {
		return false
	}
	return s.indexFrom(s.Head(), 1) >= 0
}

// CheckCollisionWith reports whether this head sits on other's body.
// Dead snakes never collide either way.
func (s *Snake) CheckCollisionWith(other *Snake) bool {
	if other == nil || !s.Alive || !other.Alive {
		return false
	}
	return other.Contains(s.Head())
}

// Kill marks the snake dead and counts the collision.
func (s *Snake) Kill() {
	s.Alive = false
	s.Stats.Collisions++
}

// Clone performs a deep copy of the snake.
func (s *Snake) Clone() *Snake {
	if s == nil {
		return nil
	}
	out := &Snake{
		Id:        s.Id,
		Name:      s.Name,
		Direction: s.Direction,
		Alive:     s.Alive,
		Score:     s.Score,
		Stats:     s.Stats,
	}
	for i := 0; i < s.Body.Len(); i++ {
		out.Body.PushBack(s.Body.At(i))
	}
	return out
}
