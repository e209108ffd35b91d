package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/snekduel/config"
	"github.com/brensch/snekduel/logging"
	"github.com/brensch/snekduel/match"
	"github.com/brensch/snekduel/tui"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flags := config.RegisterFlags(fs)
	headless := fs.Bool("headless", false, "Play one match without the terminal UI and print the result")
	logFile := fs.String("log-file", "", "Write logs here; the terminal UI otherwise discards them")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("flag parse: %v", err)
	}

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logOut io.Writer = io.Discard
	switch {
	case *logFile != "":
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	case *headless:
		logOut = os.Stderr
	}
	logger, err := logging.New(logOut, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	seed := cfg.Match.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := match.New(cfg.Board.Width, cfg.Board.Height,
		match.WithSeed(seed),
		match.WithStartMargin(cfg.Match.StartMargin),
		match.WithTuning(cfg.Tuning()),
		match.WithRules(cfg.Rules()),
		match.WithObserver(logging.Observer(logger)),
	)
	names := [2]string{cfg.Strategies.Snake1, cfg.Strategies.Snake2}
	if _, err := m.Reset(names[0], names[1]); err != nil {
		log.Fatalf("reset: %v", err)
	}
	logger.Info("match started", "match", m.ID, "snake1", names[0], "snake2", names[1], "seed", seed,
		"width", cfg.Board.Width, "height", cfg.Board.Height)

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		state, err := m.Play(ctx, cfg.Match.MaxTicks)
		if err != nil {
			log.Fatalf("play: %v", err)
		}
		st := m.Statistics()
		fmt.Printf("match %s: %s after %d ticks (%s)\n", st.ID, st.Result, st.Ticks, st.Duration.Round(time.Millisecond))
		for _, s := range st.Snakes {
			fmt.Printf("  %-13s %-10s score %d len %d alive %t food %d\n", s.Name, s.Strategy, s.Score, s.Length, s.Alive, s.FoodEaten)
		}
		if w := state.Winner(); w != nil {
			fmt.Printf("winner: %s\n", w.Name)
		}
		return
	}

	p := tea.NewProgram(tui.New(m, names, cfg.Match.TickInterval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
