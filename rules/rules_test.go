package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/snekduel/game"
)

func step(t *testing.T, name string, state *game.State, d0, d1 game.Direction, obs Observer) {
	t.Helper()
	before := state.Clone()
	require.NoError(t, Step(state, [2]game.Direction{d0, d1}, rand.New(rand.NewSource(1)), DefaultSettings(), obs))
	logStep(t, name, before, state)
}

func TestStep_MoveNoFood(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Right, pt(2, 2), pt(1, 2), pt(0, 2))
	b := game.NewSnakeWithBody("", game.Left, pt(7, 7))
	state := duel(10, 10, a, b, pt(5, 5))

	step(t, "move", state, game.Right, game.Left, nil)

	assert.Equal(t, []game.Point{pt(3, 2), pt(2, 2), pt(1, 2)}, a.Points())
	assert.Equal(t, []game.Point{pt(6, 7)}, b.Points())
	assert.Equal(t, 1, state.Turn)
	assert.Equal(t, 1, state.Stats.Ticks)
	assert.Equal(t, game.StatusRunning, state.Status)
	assert.Equal(t, 1, a.Stats.MovesMade)
}

func TestStep_ReversalIgnored(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Right, pt(2, 2), pt(1, 2), pt(0, 2))
	b := game.NewSnakeWithBody("", game.Left, pt(7, 7))
	state := duel(10, 10, a, b, pt(5, 5))

	step(t, "reverse", state, game.Left, game.Up, nil)

	assert.Equal(t, game.Right, a.Direction)
	assert.Equal(t, pt(3, 2), a.Head())
	// A single-cell snake may turn any way.
	assert.Equal(t, pt(7, 6), b.Head())
}

// A two-cell snake's tail looks free to the obstacle model, so a strategy may
// ask to reverse onto it. The reversal guard still wins and the snake keeps
// its heading, here straight into the wall.
func TestStep_TwoCellReversalKeepsHeading(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Right, pt(9, 5), pt(8, 5))
	b := game.NewSnakeWithBody("", game.Left, pt(2, 2))
	state := duel(10, 10, a, b, pt(5, 5))
	rec := &recorder{}

	step(t, "two-cell reverse", state, game.Left, game.Left, rec.observe)

	assert.Equal(t, game.Right, a.Direction)
	assert.Equal(t, pt(10, 5), a.Head())
	assert.False(t, a.Alive)
	assert.Equal(t, game.StatusGameOver, state.Status)
	assert.Equal(t, "b", state.WinnerId)
	require.NotEmpty(t, rec.events)
	assert.Equal(t, CauseWall, rec.events[0].Cause)
}

func TestStep_TwoCellTurnAccepted(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Right, pt(9, 5), pt(8, 5))
	b := game.NewSnakeWithBody("", game.Left, pt(2, 2))
	state := duel(10, 10, a, b, pt(5, 5))

	step(t, "two-cell turn", state, game.Up, game.Left, nil)

	assert.Equal(t, game.Up, a.Direction)
	assert.Equal(t, []game.Point{pt(9, 4), pt(9, 5)}, a.Points())
	assert.True(t, a.Alive)
}

func TestStep_EatGrowsAndRespawns(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Right, pt(3, 2))
	b := game.NewSnakeWithBody("", game.Left, pt(8, 8))
	state := duel(10, 10, a, b, pt(4, 2))
	rec := &recorder{}

	step(t, "eat", state, game.Right, game.Left, rec.observe)

	assert.Equal(t, []game.Point{pt(4, 2), pt(3, 2)}, a.Points())
	assert.Equal(t, 10, a.Score)
	assert.Equal(t, 1, a.Stats.FoodEaten)
	assert.Equal(t, 1, state.Stats.FoodGenerated)
	assert.False(t, state.Occupied(state.Food))
	assert.True(t, state.InBounds(state.Food))
	assert.Equal(t, []EventKind{EventFoodEaten, EventFoodSpawned}, rec.kinds())
}

func TestStep_SimultaneousClaimTieGoesToFirst(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Right, pt(3, 2))
	b := game.NewSnakeWithBody("", game.Left, pt(5, 2))
	a.Score, b.Score = 10, 10
	state := duel(10, 10, a, b, pt(4, 2))
	rec := &recorder{}

	step(t, "tie claim", state, game.Right, game.Left, rec.observe)

	assert.Equal(t, 20, a.Score)
	assert.Equal(t, 10, b.Score)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 1, state.Stats.SimultaneousFoodClaims)

	// Both heads now share (4,2).
	assert.False(t, a.Alive)
	assert.False(t, b.Alive)
	assert.Equal(t, 1, state.Stats.HeadCollisions)
	assert.Equal(t, game.ResultWin, state.Result)
	assert.Equal(t, "a", state.WinnerId)
	assert.Equal(t, EventFoodContested, rec.events[0].Kind)
	assert.Equal(t, "a", rec.events[0].SnakeId)
}

func TestStep_SimultaneousClaimHigherScoreWins(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Right, pt(3, 2))
	b := game.NewSnakeWithBody("", game.Left, pt(5, 2))
	a.Score, b.Score = 10, 20
	state := duel(10, 10, a, b, pt(4, 2))

	step(t, "score claim", state, game.Right, game.Left, nil)

	assert.Equal(t, 10, a.Score)
	assert.Equal(t, 30, b.Score)
	assert.Equal(t, "b", state.WinnerId)
}

func TestStep_WallDeath(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Right, pt(9, 5))
	b := game.NewSnakeWithBody("", game.Left, pt(2, 2))
	state := duel(10, 10, a, b, pt(5, 5))
	rec := &recorder{}

	step(t, "wall", state, game.Right, game.Left, rec.observe)

	assert.False(t, a.Alive)
	assert.True(t, b.Alive)
	assert.Equal(t, 1, a.Stats.Collisions)
	assert.Equal(t, game.StatusGameOver, state.Status)
	assert.Equal(t, "b", state.WinnerId)
	require.Len(t, rec.events, 2)
	assert.Equal(t, CauseWall, rec.events[0].Cause)
	assert.Equal(t, EventGameOver, rec.events[1].Kind)
}

func TestStep_BothWallsTie(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Up, pt(2, 0))
	b := game.NewSnakeWithBody("", game.Down, pt(7, 9))
	state := duel(10, 10, a, b, pt(5, 5))

	step(t, "walls", state, game.Up, game.Down, nil)

	assert.Equal(t, game.ResultTie, state.Result)
	assert.Nil(t, state.Winner())
}

func TestStep_SelfCollision(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Left, pt(2, 2), pt(3, 2), pt(3, 3), pt(2, 3), pt(1, 3))
	b := game.NewSnakeWithBody("", game.Left, pt(8, 8))
	state := duel(10, 10, a, b, pt(0, 0))
	rec := &recorder{}

	step(t, "self", state, game.Down, game.Left, rec.observe)

	assert.False(t, a.Alive)
	assert.Equal(t, CauseSelf, rec.events[0].Cause)
	assert.Equal(t, "b", state.WinnerId)
}

func TestStep_BodyCollision(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Right, pt(4, 2))
	b := game.NewSnakeWithBody("", game.Up, pt(5, 1), pt(5, 2), pt(5, 3))
	state := duel(10, 10, a, b, pt(9, 9))
	rec := &recorder{}

	step(t, "body", state, game.Right, game.Up, rec.observe)

	assert.False(t, a.Alive)
	assert.True(t, b.Alive)
	assert.Equal(t, CauseBody, rec.events[0].Cause)
	assert.Equal(t, "b", state.WinnerId)
	assert.Equal(t, 0, state.Stats.HeadCollisions)
}

func TestStep_BoardFullAborts(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Down, pt(0, 0), pt(1, 0))
	b := game.NewSnakeWithBody("", game.Right, pt(1, 1))
	b.Alive = false
	state := duel(2, 2, a, b, pt(0, 1))
	rec := &recorder{}

	step(t, "full", state, game.Down, game.Right, rec.observe)

	assert.Equal(t, game.ResultAborted, state.Result)
	assert.Equal(t, "", state.WinnerId)
	last := rec.events[len(rec.events)-1]
	assert.Equal(t, EventGameOver, last.Kind)
	assert.ErrorIs(t, last.Err, game.ErrBoardFull)
}

func TestStep_GameOverIsNoop(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Right, pt(2, 2))
	b := game.NewSnakeWithBody("", game.Left, pt(7, 7))
	state := duel(10, 10, a, b, pt(5, 5))
	state.End(game.ResultTie, "")

	step(t, "noop", state, game.Right, game.Left, nil)

	assert.Equal(t, 0, state.Turn)
	assert.Equal(t, pt(2, 2), a.Head())
}

func TestStep_InvalidState(t *testing.T) {
	err := Step(game.NewState(5, 5), [2]game.Direction{}, nil, DefaultSettings(), nil)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAbort(t *testing.T) {
	a := game.NewSnakeWithBody("", game.Right, pt(2, 2))
	b := game.NewSnakeWithBody("", game.Left, pt(7, 7))
	state := duel(10, 10, a, b, pt(5, 5))
	rec := &recorder{}

	Abort(state, assert.AnError, Multi(rec.observe, nil))
	Abort(state, assert.AnError, rec.observe)

	assert.Equal(t, game.ResultAborted, state.Result)
	assert.Len(t, rec.events, 1)
}

func TestEventStrings(t *testing.T) {
	assert.Equal(t, "food_contested", EventFoodContested.String())
	assert.Equal(t, "head_to_head", CauseHead.String())
	assert.Equal(t, "event(99)", EventKind(99).String())
}
