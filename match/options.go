package match

import (
	"math/rand"
	"time"

	"github.com/brensch/snekduel/rules"
	"github.com/brensch/snekduel/strategy"
)

type Option func(*Match)

// WithSeed makes food placement reproducible.
func WithSeed(seed int64) Option {
	return func(m *Match) { m.rng = rand.New(rand.NewSource(seed)) }
}

// WithClock replaces time.Now for tick timing and durations.
func WithClock(now func() time.Time) Option {
	return func(m *Match) { m.now = now }
}

func WithObserver(obs rules.Observer) Option {
	return func(m *Match) { m.obs = obs }
}

func WithTuning(t strategy.Tuning) Option {
	return func(m *Match) { m.tuning = t }
}

func WithRules(s rules.Settings) Option {
	return func(m *Match) { m.settings = s }
}

// WithStartMargin sets how far from the side walls the snakes start.
func WithStartMargin(margin int) Option {
	return func(m *Match) { m.margin = margin }
}
