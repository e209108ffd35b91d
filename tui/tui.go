// Package tui is a bubbletea spectator for a running match.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/match"
	"github.com/brensch/snekduel/pathfind"
	"github.com/brensch/snekduel/strategy"
)

// safeRadius bounds the reachable-cell count shown under each snake.
const safeRadius = 3

var (
	snakeStyles = [2]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	}
	deadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	foodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
)

type TickMsg time.Time

// Model drives one match on a timer and renders it.
type Model struct {
	match    *match.Match
	names    [2]string
	interval time.Duration
	paused   bool
	err      error
	state    *game.State
}

// New wraps m, which must already have been Reset with names.
func New(m *match.Match, names [2]string, interval time.Duration) Model {
	return Model{match: m, names: names, interval: interval, state: m.State()}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.restart()
		case "1":
			m.names[0] = strategy.Next(m.names[0])
			m.restart()
		case "2":
			m.names[1] = strategy.Next(m.names[1])
			m.restart()
		}
		return m, nil
	case TickMsg:
		if !m.paused && !m.match.Over() {
			m.state = m.match.Tick()
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m *Model) restart() {
	state, err := m.match.Reset(m.names[0], m.names[1])
	m.err = err
	if err == nil {
		m.state = state
		m.paused = false
	}
}

func (m Model) View() string {
	if m.state == nil {
		return "no match\n"
	}
	var b strings.Builder
	stats := m.match.Statistics()

	b.WriteString(titleStyle.Render(fmt.Sprintf("snekduel  turn %d  %s", m.state.Turn, stats.Status)))
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(renderBoard(m.state)))
	b.WriteString("\n")

	for i, s := range m.state.Snakes {
		if s == nil {
			continue
		}
		style := snakeStyles[i]
		status := "alive"
		if !s.Alive {
			style, status = deadStyle, "dead"
		}
		safe := len(pathfind.SafeCells(m.state.Width, m.state.Height, s, m.state.Opponent(i), safeRadius))
		b.WriteString(style.Render(fmt.Sprintf("%-13s %-10s score %4d  len %3d  %-5s  safe %2d",
			s.Name, stats.Snakes[i].Strategy, s.Score, s.Len(), status, safe)))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "food %d  head-to-head %d  contested %d  tick %s\n",
		stats.FoodGenerated, stats.HeadCollisions, stats.SimultaneousFoodClaims, stats.AvgTickTime)

	if m.state.Status == game.StatusGameOver {
		b.WriteString(bannerStyle.Render(banner(m.state)))
		b.WriteString("\n")
	}
	if m.paused {
		b.WriteString("paused\n")
	}
	if m.err != nil {
		fmt.Fprintf(&b, "error: %v\n", m.err)
	}
	b.WriteString("q quit  r restart  space pause  1/2 change strategy\n")
	return b.String()
}

func banner(state *game.State) string {
	switch state.Result {
	case game.ResultWin:
		return state.Winner().Name + " wins"
	case game.ResultTie:
		return "tie"
	}
	return "aborted"
}

func renderBoard(state *game.State) string {
	var b strings.Builder
	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			b.WriteString(cell(state, game.Point{X: x, Y: y}))
		}
		if y < state.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cell(state *game.State, p game.Point) string {
	for i, s := range state.Snakes {
		if s == nil || !s.Contains(p) {
			continue
		}
		style := snakeStyles[i]
		if !s.Alive {
			style = deadStyle
		}
		if s.Head() == p {
			return style.Render("@")
		}
		return style.Render("o")
	}
	if p == state.Food {
		return foodStyle.Render("*")
	}
	return emptyStyle.Render("·")
}
