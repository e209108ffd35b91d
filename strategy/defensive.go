package strategy

import (
	"math"

	"github.com/brensch/snekduel/game"
	"github.com/brensch/snekduel/pathfind"
)

type DefensiveTuning struct {
	// PathSafetyCheck is how many leading path cells are checked against the
	// opponent's head.
	PathSafetyCheck int `yaml:"path_safety_check"`
	// MinOpponentDistance is the required separation for the first path
	// cell; it relaxes by one per step further along.
	MinOpponentDistance int `yaml:"min_opponent_distance"`

	WallWeight     float64 `yaml:"wall_weight"`
	OpponentWeight float64 `yaml:"opponent_weight"`
	EscapeWeight   float64 `yaml:"escape_weight"`
	FoodWeight     float64 `yaml:"food_weight"`
}

func DefaultDefensive() DefensiveTuning {
	return DefensiveTuning{
		PathSafetyCheck:     3,
		MinOpponentDistance: 3,
		WallWeight:          2.0,
		OpponentWeight:      3.0,
		EscapeWeight:        2.0,
		FoodWeight:          0.1,
	}
}

// Defensive only takes food paths that stay clear of the opponent and
// otherwise moves to the roomiest cell.
type Defensive struct {
	Tuning DefensiveTuning
	Finder pathfind.Finder
}

func (d *Defensive) Name() string { return NameDefensive }

func (d *Defensive) Decide(v View) game.Direction {
	if !game.InBounds(v.Width, v.Height, v.Food) || v.Self == nil || !v.Self.Alive {
		return SafeDirection(v)
	}
	head := v.Self.Head()
	blocked := v.obstacles()

	safe := SafeDirections(v, blocked)
	if len(safe) == 0 {
		return SafeDirection(v)
	}

	path, err := d.Finder.Path(v.Width, v.Height, head, v.Food, blocked)
	if err == nil && len(path) > 0 && d.pathSafe(v, path) {
		if dir, ok := firstStep(head, path); ok && contains(safe, dir) {
			return dir
		}
	}

	best := safe[0]
	bestScore := math.Inf(-1)
	for _, dir := range safe {
		score := d.Score(v, head.Add(dir), blocked)
		if score > bestScore {
			best, bestScore = dir, score
		}
	}
	return best
}

func (d *Defensive) pathSafe(v View, path []game.Point) bool {
	if !v.opponentAlive() {
		return true
	}
	oppHead := v.Opponent.Head()
	n := min(d.Tuning.PathSafetyCheck, len(path))
	for i := 0; i < n; i++ {
		if game.Manhattan(path[i], oppHead) < d.Tuning.MinOpponentDistance-i {
			return false
		}
	}
	return true
}

// Score rates a candidate cell: room from the walls and the opponent, escape
// routes, and a slight pull toward food.
func (d *Defensive) Score(v View, p game.Point, blocked pathfind.Set) float64 {
	score := 0.0

	wall := min(p.X, p.Y, v.Width-p.X-1, v.Height-p.Y-1)
	score += float64(wall) * d.Tuning.WallWeight

	if v.opponentAlive() {
		score += float64(game.Manhattan(p, v.Opponent.Head())) * d.Tuning.OpponentWeight
	}

	score += float64(EscapeRoutes(v.Width, v.Height, p, blocked)) * d.Tuning.EscapeWeight

	maxDist := v.Width + v.Height
	score += float64(maxDist-game.Manhattan(p, v.Food)) * d.Tuning.FoodWeight

	return score
}

// EscapeRoutes counts the open neighbors of p.
func EscapeRoutes(width, height int, p game.Point, blocked pathfind.Set) int {
	n := 0
	for _, dir := range game.Directions {
		if pathfind.Open(width, height, blocked, p.Add(dir)) {
			n++
		}
	}
	return n
}
