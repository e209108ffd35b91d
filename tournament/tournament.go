// Package tournament plays every ordered pairing of strategies against each
// other several times and aggregates the outcomes.
package tournament

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/match"
	"github.com/brensch/snekduel/rules"
	"github.com/brensch/snekduel/strategy"
)

// DefaultMaxTicks caps a tournament game that nobody wins.
const DefaultMaxTicks = 3000

var ErrNoGames = errors.New("tournament has no games to play")

type Config struct {
	Width, Height   int
	StartMargin     int
	Strategies      []string
	GamesPerPairing int
	MaxTicks        int
	Workers         int
	Seed            int64
	Tuning          strategy.Tuning
	Rules           rules.Settings
}

// Game is the outcome of one tournament game. Winner is the strategy name and
// WinnerId the snake id; both are empty for ties, aborts and capped games.
type Game struct {
	MatchID  string
	Snake1   string
	Snake2   string
	Seed     int64
	Result   game.Result
	Capped   bool
	Winner   string
	WinnerId string
	Ticks    int
	Scores   [2]int
	Elapsed  time.Duration
}

// Report is the outcome of a run. MaxTicks is the cap actually applied.
type Report struct {
	StartedAt time.Time
	MaxTicks  int
	Elapsed   time.Duration
	Games     []Game
	Matchups  []Matchup
}

type job struct {
	idx            int
	snake1, snake2 string
	seed           int64
}

// Run plays the whole schedule on cfg.Workers goroutines. The first failing
// game cancels the rest.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}
	jobs, err := schedule(cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.MaxTicks <= 0 {
		cfg.MaxTicks = DefaultMaxTicks
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	report := Report{StartedAt: time.Now(), MaxTicks: cfg.MaxTicks, Games: make([]Game, len(jobs))}
	logger.Info("tournament started", "games", len(jobs), "workers", workers, "max_ticks", cfg.MaxTicks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := play(gctx, cfg, j)
			if err != nil {
				return fmt.Errorf("game %d (%s vs %s): %w", j.idx, j.snake1, j.snake2, err)
			}
			report.Games[j.idx] = res
			logger.Debug("game finished", "match", res.MatchID, "snake1", j.snake1, "snake2", j.snake2,
				"result", res.Result.String(), "capped", res.Capped, "ticks", res.Ticks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	report.Elapsed = time.Since(report.StartedAt)
	report.Matchups = Summarize(report.Games)
	logger.Info("tournament finished", "games", len(report.Games), "elapsed", report.Elapsed)
	return report, nil
}

func schedule(cfg Config) ([]job, error) {
	for _, name := range cfg.Strategies {
		if _, err := strategy.New(name, cfg.Tuning); err != nil {
			return nil, err
		}
	}
	if len(cfg.Strategies) == 0 || cfg.GamesPerPairing <= 0 {
		return nil, ErrNoGames
	}
	var jobs []job
	for _, a := range cfg.Strategies {
		for _, b := range cfg.Strategies {
			for n := 0; n < cfg.GamesPerPairing; n++ {
				idx := len(jobs)
				jobs = append(jobs, job{idx: idx, snake1: a, snake2: b, seed: cfg.Seed + int64(idx)})
			}
		}
	}
	return jobs, nil
}

func play(ctx context.Context, cfg Config, j job) (Game, error) {
	if err := ctx.Err(); err != nil {
		return Game{}, err
	}
	start := time.Now()
	m := match.New(cfg.Width, cfg.Height,
		match.WithSeed(j.seed),
		match.WithStartMargin(cfg.StartMargin),
		match.WithTuning(cfg.Tuning),
		match.WithRules(cfg.Rules),
	)
	if _, err := m.Reset(j.snake1, j.snake2); err != nil {
		return Game{}, err
	}
	state, err := m.Play(ctx, cfg.MaxTicks)
	if err != nil {
		return Game{}, err
	}

	out := Game{
		MatchID: m.ID,
		Snake1:  j.snake1,
		Snake2:  j.snake2,
		Seed:    j.seed,
		Result:  state.Result,
		Capped:  state.Status != game.StatusGameOver,
		Ticks:   state.Turn,
		Scores:  [2]int{state.Snakes[0].Score, state.Snakes[1].Score},
		Elapsed: time.Since(start),
	}
	if state.Result == game.ResultWin {
		out.WinnerId = state.WinnerId
		out.Winner = j.snake1
		if state.WinnerId == match.Snake2Id {
			out.Winner = j.snake2
		}
	}
	return out, nil
}
