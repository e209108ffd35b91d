// Package config loads snekduel settings from YAML over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/match"
	"github.com/brensch/snekduel/pathfind"
	"github.com/brensch/snekduel/rules"
	"github.com/brensch/snekduel/strategy"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Board       Board       `yaml:"board"`
	Food        Food        `yaml:"food"`
	Pathfinding Pathfinding `yaml:"pathfinding"`
	Strategies  Strategies  `yaml:"strategies"`
	Match       Match       `yaml:"match"`
	Log         Log         `yaml:"log"`
}

type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Food struct {
	Score       int `yaml:"score"`
	MaxAttempts int `yaml:"max_attempts"`
}

type Pathfinding struct {
	Algorithm string `yaml:"algorithm"` // bfs or astar
	MaxNodes  int    `yaml:"max_nodes"` // 0: unbounded BFS, 1000 for A*
}

type Strategies struct {
	Snake1     string                    `yaml:"snake1"`
	Snake2     string                    `yaml:"snake2"`
	Balanced   strategy.BalancedTuning   `yaml:"balanced"`
	Aggressive strategy.AggressiveTuning `yaml:"aggressive"`
	Defensive  strategy.DefensiveTuning  `yaml:"defensive"`
}

type Match struct {
	StartMargin  int           `yaml:"start_margin"`
	TickInterval time.Duration `yaml:"tick_interval"`
	MaxTicks     int           `yaml:"max_ticks"`
	Seed         int64         `yaml:"seed"` // 0 picks a time-based seed
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	t := strategy.DefaultTuning()
	return Config{
		Board:       Board{Width: 40, Height: 30},
		Food:        Food{Score: 10, MaxAttempts: game.DefaultFoodAttempts},
		Pathfinding: Pathfinding{Algorithm: "bfs"},
		Strategies: Strategies{
			Snake1:     strategy.NameBalanced,
			Snake2:     strategy.NameAggressive,
			Balanced:   t.Balanced,
			Aggressive: t.Aggressive,
			Defensive:  t.Defensive,
		},
		Match: Match{StartMargin: 5, TickInterval: 50 * time.Millisecond},
		Log:   Log{Level: "info", Format: "text"},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg, err := read(path)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func read(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Board.Width >= match.MinWidth(c.Match.StartMargin), "board.width %d too small for start margin %d (need %d)",
		c.Board.Width, c.Match.StartMargin, match.MinWidth(c.Match.StartMargin))
	check(c.Board.Height >= 3, "board.height %d must be at least 3", c.Board.Height)
	check(c.Match.StartMargin >= 0, "match.start_margin must not be negative")
	check(c.Match.TickInterval >= 0, "match.tick_interval must not be negative")
	check(c.Match.MaxTicks >= 0, "match.max_ticks must not be negative")
	check(c.Food.Score >= 0, "food.score must not be negative")
	check(c.Food.MaxAttempts >= 0, "food.max_attempts must not be negative")
	check(c.Pathfinding.MaxNodes >= 0, "pathfinding.max_nodes must not be negative")
	if _, err := pathfind.ParseAlgorithm(c.Pathfinding.Algorithm); err != nil {
		errs = append(errs, err)
	}
	for _, name := range []string{c.Strategies.Snake1, c.Strategies.Snake2} {
		if _, err := strategy.New(name, c.Tuning()); err != nil {
			errs = append(errs, err)
		}
	}
	check(c.Strategies.Aggressive.BlockingEfficiency > 0, "strategies.aggressive.blocking_efficiency must be positive")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Finder returns the configured path search. An unparsable algorithm falls
// back to BFS; Validate reports it.
func (c Config) Finder() pathfind.Finder {
	alg, _ := pathfind.ParseAlgorithm(c.Pathfinding.Algorithm)
	return pathfind.Finder{Algorithm: alg, MaxNodes: c.Pathfinding.MaxNodes}
}

func (c Config) Tuning() strategy.Tuning {
	return strategy.Tuning{
		Finder:     c.Finder(),
		Balanced:   c.Strategies.Balanced,
		Aggressive: c.Strategies.Aggressive,
		Defensive:  c.Strategies.Defensive,
	}
}

func (c Config) Rules() rules.Settings {
	return rules.Settings{FoodScore: c.Food.Score, FoodAttempts: c.Food.MaxAttempts}
}
