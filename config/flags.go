package config

import (
	"flag"
	"time"
)

// Flags are the command-line overrides shared by every binary. Only flags
// the user actually sets override the file.
type Flags struct {
	fs *flag.FlagSet

	path      *string
	width     *int
	height    *int
	snake1    *string
	snake2    *string
	algorithm *string
	seed      *int64
	interval  *time.Duration
	maxTicks  *int
	logLevel  *string
	logFormat *string
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	d := Default()
	return &Flags{
		fs:        fs,
		path:      fs.String("config", "", "YAML config file (defaults apply when empty)"),
		width:     fs.Int("width", d.Board.Width, "Board width"),
		height:    fs.Int("height", d.Board.Height, "Board height"),
		snake1:    fs.String("s1", d.Strategies.Snake1, "Strategy for snake 1 (Balanced, Aggressive, Defensive)"),
		snake2:    fs.String("s2", d.Strategies.Snake2, "Strategy for snake 2 (Balanced, Aggressive, Defensive)"),
		algorithm: fs.String("pathfinding", d.Pathfinding.Algorithm, "Path search: bfs or astar"),
		seed:      fs.Int64("seed", d.Match.Seed, "Food RNG seed (0 = time based)"),
		interval:  fs.Duration("interval", d.Match.TickInterval, "Delay between ticks"),
		maxTicks:  fs.Int("max-ticks", d.Match.MaxTicks, "Stop a game after this many ticks (0 = no cap)"),
		logLevel:  fs.String("log-level", d.Log.Level, "debug, info, warn or error"),
		logFormat: fs.String("log-format", d.Log.Format, "text, json or pretty"),
	}
}

// Load reads the -config file and applies the flags that were set.
func (f *Flags) Load() (Config, error) {
	cfg, err := read(*f.path)
	if err != nil {
		return cfg, err
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Board.Width = *f.width
		case "height":
			cfg.Board.Height = *f.height
		case "s1":
			cfg.Strategies.Snake1 = *f.snake1
		case "s2":
			cfg.Strategies.Snake2 = *f.snake2
		case "pathfinding":
			cfg.Pathfinding.Algorithm = *f.algorithm
		case "seed":
			cfg.Match.Seed = *f.seed
		case "interval":
			cfg.Match.TickInterval = *f.interval
		case "max-ticks":
			cfg.Match.MaxTicks = *f.maxTicks
		case "log-level":
			cfg.Log.Level = *f.logLevel
		case "log-format":
			cfg.Log.Format = *f.logFormat
		}
	})
	return cfg, cfg.Validate()
}
