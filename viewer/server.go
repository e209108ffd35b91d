// Package viewer serves a live match over HTTP: an HTML board, JSON
// endpoints and a websocket stream of snapshots.
package viewer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/brensch/snekduel/match"
	"github.com/brensch/snekduel/strategy"
)

type Options struct {
	// Interval between ticks in Run.
	Interval time.Duration
	// AutoRestart starts a new episode this long after game over; 0 disables it.
	AutoRestart time.Duration
	Logger      *slog.Logger
}

// Server owns a match and fans its snapshots out to websocket clients.
type Server struct {
	opts Options
	log  *slog.Logger

	mu     sync.Mutex
	match  *match.Match
	names  [2]string
	overAt time.Time

	subMu    sync.Mutex
	subs     map[chan []byte]struct{}
	upgrader websocket.Upgrader
}

// NewServer wraps m, which must already have been Reset with names.
func NewServer(m *match.Match, names [2]string, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	return &Server{
		opts:  opts,
		log:   logger,
		match: m,
		names: names,
		subs:  make(map[chan []byte]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// RegisterRoutes sets up all routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/restart", s.handleRestart)
	mux.HandleFunc("/ws", s.handleWS)
}

// Run ticks the match until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	t := time.NewTicker(s.opts.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			s.advance(now)
		}
	}
}

func (s *Server) advance(now time.Time) {
	s.mu.Lock()
	if s.match.Over() {
		if s.opts.AutoRestart <= 0 || now.Sub(s.overAt) < s.opts.AutoRestart {
			s.mu.Unlock()
			return
		}
		if _, err := s.match.Reset(s.names[0], s.names[1]); err != nil {
			s.log.Error("auto restart failed", "err", err)
			s.mu.Unlock()
			return
		}
		s.log.Info("match restarted", "match", s.match.ID)
	} else {
		s.match.Tick()
		if s.match.Over() {
			s.overAt = now
			st := s.match.Statistics()
			s.log.Info("match finished", "match", st.ID, "result", st.Result, "winner", st.WinnerId, "ticks", st.Ticks)
		}
	}
	s.broadcast(snapshotOf(s.match))
	s.mu.Unlock()
}

// Step advances one tick outside the Run loop and returns the new snapshot.
func (s *Server) Step() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.match.Tick()
	snap := snapshotOf(s.match)
	s.broadcast(snap)
	return snap
}

func (s *Server) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotOf(s.match)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, s.snapshot())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	s.mu.Lock()
	st := s.match.Statistics()
	s.mu.Unlock()
	writeJSON(w, st)
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	s.mu.Lock()
	names := [2]string{queryOr(r, "s1", s.names[0]), queryOr(r, "s2", s.names[1])}
	_, err := s.match.Reset(names[0], names[1])
	if err == nil {
		s.names = names
	}
	snap := snapshotOf(s.match)
	if err == nil {
		s.broadcast(snap)
	}
	s.mu.Unlock()

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, strategy.ErrUnknownStrategy) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	s.log.Info("match restarted", "match", snap.MatchID, "snake1", names[0], "snake2", names[1])
	writeJSON(w, snap)
}

// broadcast queues snap for every subscriber. Callers hold mu so snapshots
// reach each client in tick order; it never blocks.
func (s *Server) broadcast(snap Snapshot) {
	msg, err := json.Marshal(snap)
	if err != nil {
		s.log.Error("encode snapshot", "err", err)
		return
	}
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- msg:
		default:
			// Slow client; it catches up on the next snapshot.
		}
	}
}

// subscribe registers a client and returns the snapshot it starts from.
// Every later broadcast is newer than that snapshot.
func (s *Server) subscribe() (chan []byte, Snapshot) {
	ch := make(chan []byte, 8)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()
	return ch, snapshotOf(s.match)
}

func (s *Server) unsubscribe(ch chan []byte) {
	s.subMu.Lock()
	delete(s.subs, ch)
	s.subMu.Unlock()
}
