package rules

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brensch/snekduel/game"
)

func pt(x, y int) game.Point { return game.Point{X: x, Y: y} }

func dumpState(state *game.State) string {
	if state == nil {
		return "<nil state>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Turn=%d Size=%dx%d Status=%s Result=%s Winner=%q\n",
		state.Turn, state.Width, state.Height, state.Status, state.Result, state.WinnerId)
	fmt.Fprintf(&b, "Food: (%d,%d)\n", state.Food.X, state.Food.Y)
	for _, s := range state.Snakes {
		if s == nil {
			continue
		}
		fmt.Fprintf(&b, "Snake %s Alive=%t Score=%d Dir=%s Body:", s.Id, s.Alive, s.Score, s.Direction)
		for _, p := range s.Points() {
			fmt.Fprintf(&b, " (%d,%d)", p.X, p.Y)
		}
		b.WriteString("\n")
	}

	if state.Width > 40 || state.Height > 40 {
		return b.String()
	}
	b.WriteString("Board:\n")
	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			p := pt(x, y)
			c := byte('.')
			for i, s := range state.Snakes {
				if s == nil || !s.Contains(p) {
					continue
				}
				c = byte('a' + i)
				if s.Head() == p {
					c = byte('A' + i)
				}
			}
			if c == '.' && p == state.Food {
				c = '*'
			}
			b.WriteByte(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func logStep(t *testing.T, name string, before, after *game.State) {
	t.Helper()
	t.Logf("=== %s ===\nBefore:\n%sAfter:\n%s", name, dumpState(before), dumpState(after))
}

// duel builds a running state from two snakes.
func duel(w, h int, a, b *game.Snake, food game.Point) *game.State {
	s := game.NewState(w, h)
	a.Id, b.Id = "a", "b"
	s.Snakes = [2]*game.Snake{a, b}
	s.Food = food
	return s
}

type recorder struct{ events []Event }

func (r *recorder) observe(e Event) { r.events = append(r.events, e) }

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}
