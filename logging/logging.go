// Package logging builds the slog handlers used by the snekduel binaries and
// turns match events into log records.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/brensch/snekduel/rules"
)

const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatText   = "text"
)

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// NewHandler returns a handler for format writing to w at level.
func NewHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case FormatPretty:
		return NewPrettyHandler(w, opts, "  "), nil
	case FormatJSON:
		return NewPrettyHandler(w, opts, ""), nil
	case "", FormatText:
		return slog.NewTextHandler(w, opts), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

// New is NewHandler wrapped in a logger.
func New(w io.Writer, format, level string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	h, err := NewHandler(w, format, l)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Observer logs match events: decision failures at Warn, deaths and game
// over at Info, food at Debug.
func Observer(logger *slog.Logger) rules.Observer {
	return func(e rules.Event) {
		ctx := context.Background()
		attrs := []slog.Attr{slog.Int("turn", e.Turn)}
		if e.SnakeId != "" {
			attrs = append(attrs, slog.String("snake", e.SnakeId))
		}

		switch e.Kind {
		case rules.EventDecisionFailed:
			attrs = append(attrs, slog.Any("err", e.Err))
			logger.LogAttrs(ctx, slog.LevelWarn, "strategy failed", attrs...)
		case rules.EventDeath:
			attrs = append(attrs, slog.String("cause", e.Cause.String()), point("at", e.Point.X, e.Point.Y))
			logger.LogAttrs(ctx, slog.LevelInfo, "snake died", attrs...)
		case rules.EventGameOver:
			attrs = append(attrs, slog.String("result", e.Result.String()))
			level := slog.LevelInfo
			if e.Err != nil {
				attrs = append(attrs, slog.Any("err", e.Err))
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "game over", attrs...)
		case rules.EventFoodContested:
			attrs = append(attrs, point("food", e.Point.X, e.Point.Y))
			logger.LogAttrs(ctx, slog.LevelDebug, "food contested", attrs...)
		case rules.EventFoodEaten:
			attrs = append(attrs, point("food", e.Point.X, e.Point.Y))
			logger.LogAttrs(ctx, slog.LevelDebug, "food eaten", attrs...)
		case rules.EventFoodSpawned:
			attrs = append(attrs, point("food", e.Point.X, e.Point.Y))
			logger.LogAttrs(ctx, slog.LevelDebug, "food spawned", attrs...)
		}
	}
}

func point(key string, x, y int) slog.Attr {
	return slog.Group(key, slog.Int("x", x), slog.Int("y", y))
}
