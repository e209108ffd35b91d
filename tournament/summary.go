package tournament

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/match"
)

// Matchup aggregates all games of one ordered pairing. Wins1 counts games won
// by the snake in the first slot, even in a mirror pairing.
type Matchup struct {
	Snake1     string
	Snake2     string
	Games      int
	Wins1      int
	Wins2      int
	Ties       int
	Aborted    int
	Capped     int
	MeanTicks  float64
	MeanScore1 float64
	MeanScore2 float64
}

// Summarize groups games by ordered pairing in first-seen order.
func Summarize(games []Game) []Matchup {
	var out []Matchup
	index := map[[2]string]int{}
	for _, g := range games {
		key := [2]string{g.Snake1, g.Snake2}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Matchup{Snake1: g.Snake1, Snake2: g.Snake2})
		}
		m := &out[i]
		m.Games++
		m.MeanTicks += float64(g.Ticks)
		m.MeanScore1 += float64(g.Scores[0])
		m.MeanScore2 += float64(g.Scores[1])
		switch {
		case g.Capped:
			m.Capped++
		case g.Result == game.ResultTie:
			m.Ties++
		case g.Result == game.ResultAborted:
			m.Aborted++
		case g.Result == game.ResultWin && winnerSlot(g) == 0:
			m.Wins1++
		case g.Result == game.ResultWin:
			m.Wins2++
		}
	}
	for i := range out {
		n := float64(out[i].Games)
		out[i].MeanTicks /= n
		out[i].MeanScore1 /= n
		out[i].MeanScore2 /= n
	}
	return out
}

// winnerSlot goes by snake id; the strategy name is ambiguous in mirror
// pairings.
func winnerSlot(g Game) int {
	if g.WinnerId == match.Snake2Id {
		return 1
	}
	return 0
}

// WriteTable prints the matchups as an aligned table.
func WriteTable(w io.Writer, matchups []Matchup) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "snake1\tsnake2\tgames\twins1\twins2\tties\taborted\tcapped\tticks\tscore1\tscore2\t")
	for _, m := range matchups {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f\t%.1f\t%.1f\t\n",
			m.Snake1, m.Snake2, m.Games, m.Wins1, m.Wins2, m.Ties, m.Aborted, m.Capped,
			m.MeanTicks, m.MeanScore1, m.MeanScore2)
	}
	return tw.Flush()
}
