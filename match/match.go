// Package match drives one duel at a time: it builds episodes, asks both
// strategies for a move each tick and hands the moves to rules.Step.
//
// A Match is not safe for concurrent use. Callers that share one across
// goroutines (the viewer) guard it themselves; everything returned to callers
// is a cloned snapshot.
package match

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/rules"
	"github.com/brensch/snekduel/strategy"
)

// ErrTickPanic wraps a panic recovered while advancing a tick.
var ErrTickPanic = errors.New("tick panicked")

var errNotStarted = errors.New("match not started")

const (
	DefaultStartMargin = 5
	// MinStartGap is the least column distance between the two start cells.
	MinStartGap = 2

	Snake1Id   = "snake1"
	Snake2Id   = "snake2"
	Snake1Name = "Orange Snake"
	Snake2Name = "Cyan Snake"
)

// MinWidth is the narrowest board that fits both starts for margin.
func MinWidth(margin int) int {
	return 2*margin + 1 + MinStartGap
}

type Match struct {
	ID string

	width, height int
	margin        int
	tuning        strategy.Tuning
	settings      rules.Settings
	rng           *rand.Rand
	now           func() time.Time
	obs           rules.Observer

	state      *game.State
	strategies [2]strategy.Strategy
	ticks      tickWindow
}

// New returns a match for a width x height board. Call Reset before Tick.
func New(width, height int, opts ...Option) *Match {
	m := &Match{
		width:    width,
		height:   height,
		margin:   DefaultStartMargin,
		tuning:   strategy.DefaultTuning(),
		settings: rules.DefaultSettings(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return m
}

// FromState wraps an existing state, e.g. a hand-built scenario.
func FromState(state *game.State, s1, s2 strategy.Strategy, opts ...Option) *Match {
	m := New(state.Width, state.Height, opts...)
	m.ID = uuid.NewString()
	m.state = state
	m.strategies = [2]strategy.Strategy{s1, s2}
	if m.state.Stats.StartedAt.IsZero() {
		m.state.Stats.StartedAt = m.now()
	}
	return m
}

// Reset starts a new episode with the named strategies. On error the current
// episode is kept as it was.
func (m *Match) Reset(s1, s2 string) (*game.State, error) {
	var strategies [2]strategy.Strategy
	for i, name := range []string{s1, s2} {
		s, err := strategy.New(name, m.tuning)
		if err != nil {
			return nil, fmt.Errorf("snake %d: %w", i+1, err)
		}
		strategies[i] = s
	}

	if m.margin < 0 || m.width < MinWidth(m.margin) {
		return nil, fmt.Errorf("%w: width %d too narrow for start margin %d (need %d)",
			game.ErrInvalidPosition, m.width, m.margin, MinWidth(m.margin))
	}

	mid := m.height / 2
	state := game.NewState(m.width, m.height)
	state.Snakes = [2]*game.Snake{
		game.NewSnake(Snake1Id, Snake1Name, game.Point{X: m.margin, Y: mid}, game.Right),
		game.NewSnake(Snake2Id, Snake2Name, game.Point{X: m.width - 1 - m.margin, Y: mid}, game.Left),
	}
	for _, s := range state.Snakes {
		if !state.InBounds(s.Head()) {
			return nil, fmt.Errorf("start %v: %w", s.Head(), game.ErrInvalidPosition)
		}
	}
	food, err := game.SpawnFood(state, m.rng, m.settings.FoodAttempts)
	if err != nil {
		return nil, fmt.Errorf("initial food: %w", err)
	}
	state.Food = food
	state.Stats.StartedAt = m.now()

	m.ID = uuid.NewString()
	m.state = state
	m.strategies = strategies
	m.ticks = tickWindow{}
	return state.Clone(), nil
}

// Tick advances one step and returns a snapshot. A finished or unstarted
// match is not advanced.
func (m *Match) Tick() *game.State {
	if m.state == nil {
		return nil
	}
	if m.state.Status == game.StatusGameOver {
		return m.state.Clone()
	}

	start := m.now()
	m.step()
	end := m.now()
	m.ticks.add(end.Sub(start))
	if m.state.Status == game.StatusGameOver {
		m.state.Stats.Duration = end.Sub(m.state.Stats.StartedAt)
	}
	return m.state.Clone()
}

// step runs one transition. Any panic ends the episode as aborted.
func (m *Match) step() {
	defer func() {
		if r := recover(); r != nil {
			rules.Abort(m.state, fmt.Errorf("%w: %v", ErrTickPanic, r), m.obs)
		}
	}()

	// Every decision sees the same pre-tick board.
	var decisions [2]game.Direction
	for i, s := range m.state.Snakes {
		decisions[i] = s.Direction
		if s.Alive {
			decisions[i] = m.decide(i)
		}
	}
	if err := rules.Step(m.state, decisions, m.rng, m.settings, m.obs); err != nil {
		rules.Abort(m.state, err, m.obs)
	}
}

// decide asks strategy i for a move. A panicking strategy keeps its current
// direction.
func (m *Match) decide(i int) (d game.Direction) {
	self := m.state.Snakes[i]
	d = self.Direction
	defer func() {
		if r := recover(); r != nil {
			d = self.Direction
			if m.obs != nil {
				m.obs(rules.Event{
					Kind:    rules.EventDecisionFailed,
					Turn:    m.state.Turn,
					SnakeId: self.Id,
					Err:     fmt.Errorf("%s: %v", m.StrategyNames()[i], r),
				})
			}
		}
	}()
	return m.strategies[i].Decide(strategy.ViewOf(m.state, i))
}

// Play ticks until the game ends, maxTicks turns have been played
// (0 means no cap) or ctx is done.
func (m *Match) Play(ctx context.Context, maxTicks int) (*game.State, error) {
	if m.state == nil {
		return nil, errNotStarted
	}
	for m.state.Status != game.StatusGameOver {
		if maxTicks > 0 && m.state.Turn >= maxTicks {
			break
		}
		if err := ctx.Err(); err != nil {
			return m.state.Clone(), err
		}
		m.Tick()
	}
	return m.state.Clone(), nil
}

// State returns a snapshot of the current episode, or nil before Reset.
func (m *Match) State() *game.State {
	return m.state.Clone()
}

func (m *Match) StrategyNames() [2]string {
	var out [2]string
	for i, s := range m.strategies {
		if s != nil {
			out[i] = s.Name()
		}
	}
	return out
}

// Over reports whether the current episode has finished.
func (m *Match) Over() bool {
	return m.state != nil && m.state.Status == game.StatusGameOver
}
