package game

import (
	"strings"
	"testing"
)

// dumpState is a test helper to visualize board state.
// Snake heads are uppercase, bodies lowercase, food is '*'.
func dumpState(state *State) string {
	grid := make([][]byte, state.Height)
	for y := 0; y < state.Height; y++ {
		grid[y] = make([]byte, state.Width)
		for x := 0; x < state.Width; x++ {
			grid[y][x] = '.'
		}
	}
	if state.InBounds(state.Food) {
		grid[state.Food.Y][state.Food.X] = '*'
	}
	for i, s := range state.Snakes {
		if s == nil {
			continue
		}
		sym := byte('a' + i)
		for j, p := range s.Points() {
			if !state.InBounds(p) {
				continue
			}
			if j == 0 {
				grid[p.Y][p.X] = sym - 32
			} else {
				grid[p.Y][p.X] = sym
			}
		}
	}
	var sb strings.Builder
	for y := 0; y < state.Height; y++ {
		sb.WriteString(string(grid[y]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func logState(t *testing.T, label string, state *State) {
	t.Helper()
	t.Logf("%s\n%s", label, dumpState(state))
}

func equalPoints(t *testing.T, got, want []Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len=%d want=%d (got %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("[%d]=%v want=%v", i, got[i], want[i])
		}
	}
}
