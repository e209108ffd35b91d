// Package store persists aggregate tournament results as parquet.
//
// Only per-matchup summaries are written; individual games and ticks are
// never stored.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/brensch/snekduel/tournament"
)

// SummarySchema is recorded under the "schema" key of every file.
const SummarySchema = "matchup_summary_v1"

// MatchupRow is one ordered pairing of one tournament run.
type MatchupRow struct {
	TournamentID string `parquet:"tournament_id,dict"`
	CreatedAtNs  int64  `parquet:"created_at_ns"`
	Width        int32  `parquet:"width"`
	Height       int32  `parquet:"height"`
	MaxTicks     int32  `parquet:"max_ticks"`
	Seed         int64  `parquet:"seed"`

	Snake1 string `parquet:"snake1,dict"`
	Snake2 string `parquet:"snake2,dict"`

	Games   int32 `parquet:"games"`
	Wins1   int32 `parquet:"wins1"`
	Wins2   int32 `parquet:"wins2"`
	Ties    int32 `parquet:"ties"`
	Aborted int32 `parquet:"aborted"`
	Capped  int32 `parquet:"capped"`

	MeanTicks  float64 `parquet:"mean_ticks"`
	MeanScore1 float64 `parquet:"mean_score1"`
	MeanScore2 float64 `parquet:"mean_score2"`
}

// SummaryRows flattens a report into rows tagged with id. The tick cap comes
// from the report, which holds the value Run applied.
func SummaryRows(id string, cfg tournament.Config, report tournament.Report) []MatchupRow {
	rows := make([]MatchupRow, 0, len(report.Matchups))
	for _, m := range report.Matchups {
		rows = append(rows, MatchupRow{
			TournamentID: id,
			CreatedAtNs:  report.StartedAt.UnixNano(),
			Width:        int32(cfg.Width),
			Height:       int32(cfg.Height),
			MaxTicks:     int32(report.MaxTicks),
			Seed:         cfg.Seed,
			Snake1:       m.Snake1,
			Snake2:       m.Snake2,
			Games:        int32(m.Games),
			Wins1:        int32(m.Wins1),
			Wins2:        int32(m.Wins2),
			Ties:         int32(m.Ties),
			Aborted:      int32(m.Aborted),
			Capped:       int32(m.Capped),
			MeanTicks:    m.MeanTicks,
			MeanScore1:   m.MeanScore1,
			MeanScore2:   m.MeanScore2,
		})
	}
	return rows
}

// WriteSummaryParquet writes rows to outPath through a temp file and rename.
func WriteSummaryParquet(outPath string, rows []MatchupRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", SummarySchema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// WriteSummaryBatch writes rows into outDir under a timestamped name and
// returns the final path.
func WriteSummaryBatch(outDir string, rows []MatchupRow) (string, error) {
	name := fmt.Sprintf("summary_%d.parquet", time.Now().UnixNano())
	outPath := filepath.Join(outDir, name)
	if err := WriteSummaryParquet(outPath, rows); err != nil {
		return "", err
	}
	return outPath, nil
}

// ReadSummaryParquet loads a summary file and checks its schema tag.
func ReadSummaryParquet(path string) ([]MatchupRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, st.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	if schema, _ := pf.Lookup("schema"); schema != SummarySchema {
		return nil, fmt.Errorf("%s: schema %q, want %q", path, schema, SummarySchema)
	}

	rows, err := parquet.ReadFile[MatchupRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows, nil
}
