package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brensch/snekduel/config"
	"github.com/brensch/snekduel/logging"
	"github.com/brensch/snekduel/match"
	"github.com/brensch/snekduel/viewer"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flags := config.RegisterFlags(fs)
	listen := fs.String("listen", "127.0.0.1:8080", "HTTP listen address")
	autoRestart := fs.Duration("auto-restart", 3*time.Second, "Start a new match this long after game over (0 disables)")
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

	srv := viewer.NewServer(m, names, viewer.Options{
		Interval:    cfg.Match.TickInterval,
		AutoRestart: *autoRestart,
		Logger:      logger,
	})
	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("match loop stopped", "err", err)
		}
	}()

	httpSrv := &http.Server{Addr: *listen, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Info("viewer listening", "addr", "http://"+*listen, "match", m.ID)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("listen: %v", err)
	}
}
