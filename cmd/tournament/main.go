package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/brensch/snekduel/config"
	"github.com/brensch/snekduel/logging"
	"github.com/brensch/snekduel/store"
	"github.com/brensch/snekduel/strategy"
	"github.com/brensch/snekduel/tournament"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flags := config.RegisterFlags(fs)
	games := fs.Int("games", 10, "Games per ordered pairing")
	workers := fs.Int("workers", runtime.NumCPU(), "Matches played in parallel")
	strategies := fs.String("strategies", strings.Join(strategy.Names(), ","), "Comma-separated strategies to enter")
	outDir := fs.String("out-dir", "", "If set, write the matchup summary as parquet into this directory")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("flag parse: %v", err)
	}

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(os.Stderr, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	seed := cfg.Match.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tcfg := tournament.Config{
		Width:           cfg.Board.Width,
		Height:          cfg.Board.Height,
		StartMargin:     cfg.Match.StartMargin,
		Strategies:      splitNames(*strategies),
		GamesPerPairing: *games,
		MaxTicks:        cfg.Match.MaxTicks,
		Workers:         *workers,
		Seed:            seed,
		Tuning:          cfg.Tuning(),
		Rules:           cfg.Rules(),
	}
	if tcfg.MaxTicks == 0 {
		tcfg.MaxTicks = tournament.DefaultMaxTicks
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := tournament.Run(ctx, tcfg, logger)
	if err != nil {
		log.Fatalf("tournament: %v", err)
	}
	if err := tournament.WriteTable(os.Stdout, report.Matchups); err != nil {
		log.Fatalf("print: %v", err)
	}

	if *outDir != "" {
		id := uuid.NewString()
		path, err := store.WriteSummaryBatch(*outDir, store.SummaryRows(id, tcfg, report))
		if err != nil {
			log.Fatalf("write summary: %v", err)
		}
		logger.Info("summary written", "path", path, "tournament", id, "rows", len(report.Matchups))
	}
}

func splitNames(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
