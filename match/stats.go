package match

import (
	"time"

	"github.com/brensch/snekduel/game"
)

const tickWindowSize = 100

// tickWindow keeps the durations of the most recent ticks.
type tickWindow struct {
	buf  [tickWindowSize]time.Duration
	next int
	n    int
}

func (w *tickWindow) add(d time.Duration) {
	w.buf[w.next] = d
	w.next = (w.next + 1) % tickWindowSize
	if w.n < tickWindowSize {
		w.n++
	}
}

func (w *tickWindow) mean() time.Duration {
	if w.n == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < w.n; i++ {
		sum += w.buf[i]
	}
	return sum / time.Duration(w.n)
}

type SnakeStats struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Strategy   string `json:"strategy"`
	Score      int    `json:"score"`
	Length     int    `json:"length"`
	Alive      bool   `json:"alive"`
	MovesMade  int    `json:"moves_made"`
	FoodEaten  int    `json:"food_eaten"`
	Collisions int    `json:"collisions"`
}

type Stats struct {
	ID                     string        `json:"id"`
	Status                 string        `json:"status"`
	Result                 string        `json:"result"`
	WinnerId               string        `json:"winner_id,omitempty"`
	Ticks                  int           `json:"ticks"`
	FoodGenerated          int           `json:"food_generated"`
	HeadCollisions         int           `json:"head_collisions"`
	SimultaneousFoodClaims int           `json:"simultaneous_food_claims"`
	Duration               time.Duration `json:"duration_ns"`
	AvgTickTime            time.Duration `json:"avg_tick_time_ns"`
	Snakes                 [2]SnakeStats `json:"snakes"`
}

// Statistics summarises the current episode. Duration runs until now while the
// game is in progress.
func (m *Match) Statistics() Stats {
	if m.state == nil {
		return Stats{}
	}
	st := m.state
	out := Stats{
		ID:                     m.ID,
		Status:                 st.Status.String(),
		Result:                 st.Result.String(),
		WinnerId:               st.WinnerId,
		Ticks:                  st.Stats.Ticks,
		FoodGenerated:          st.Stats.FoodGenerated,
		HeadCollisions:         st.Stats.HeadCollisions,
		SimultaneousFoodClaims: st.Stats.SimultaneousFoodClaims,
		Duration:               st.Stats.Duration,
		AvgTickTime:            m.ticks.mean(),
	}
	if st.Status == game.StatusRunning {
		out.Duration = m.now().Sub(st.Stats.StartedAt)
	}

	names := m.StrategyNames()
	for i, s := range st.Snakes {
		if s == nil {
			continue
		}
		out.Snakes[i] = SnakeStats{
			Id:         s.Id,
			Name:       s.Name,
			Strategy:   names[i],
			Score:      s.Score,
			Length:     s.Len(),
			Alive:      s.Alive,
			MovesMade:  s.Stats.MovesMade,
			FoodEaten:  s.Stats.FoodEaten,
			Collisions: s.Stats.Collisions,
		}
	}
	return out
}
