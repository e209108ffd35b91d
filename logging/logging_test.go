package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/rules"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestPrettyHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, nil, "  ")).With("match", "m1").WithGroup("tick")
	logger.Info("advanced", "n", 3, slog.Group("head", "x", 1, "y", 2))
	logger.Debug("hidden")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, "advanced", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	tick := rec["tick"].(map[string]any)
	assert.Equal(t, "m1", tick["match"])
	assert.EqualValues(t, 3, tick["n"])
	assert.Equal(t, map[string]any{"x": 1.0, "y": 2.0}, tick["head"])
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	h, err := NewHandler(&buf, FormatJSON, slog.LevelDebug)
	require.NoError(t, err)
	slog.New(h).Debug("one", "err", errors.New("boom"))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), `"err":"boom"`)

	_, err = NewHandler(&buf, "xml", slog.LevelInfo)
	assert.Error(t, err)

	_, err = New(&buf, FormatText, "loud")
	assert.Error(t, err)
}

func TestObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}, ""))
	obs := Observer(logger)

	obs(rules.Event{Kind: rules.EventFoodEaten, Turn: 1, SnakeId: "snake1"})
	obs(rules.Event{Kind: rules.EventDeath, Turn: 2, SnakeId: "snake2", Cause: rules.CauseWall, Point: game.Point{X: -1, Y: 4}})
	obs(rules.Event{Kind: rules.EventGameOver, Turn: 2, SnakeId: "snake1", Result: game.ResultWin})
	obs(rules.Event{Kind: rules.EventDecisionFailed, Turn: 3, SnakeId: "snake1", Err: errors.New("panic")})

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 3)
	assert.Equal(t, "snake died", recs[0]["msg"])
	assert.Equal(t, "wall", recs[0]["cause"])
	assert.Equal(t, map[string]any{"x": -1.0, "y": 4.0}, recs[0]["at"])
	assert.Equal(t, "win", recs[1]["result"])
	assert.Equal(t, "WARN", recs[2]["level"])
	assert.Equal(t, "panic", recs[2]["err"])
}
