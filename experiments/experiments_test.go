package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"game2048/experiments/metrics"
	"game2048/game"

	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, path string) int {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows) - 1 // Header
}

func TestRun(t *testing.T) {
	cfg := metrics.ExperimentConfig{
		Name:     "smoke",
		Games:    2,
		Seed:     1,
		MaxMoves: 10,
		Agents: []metrics.AgentConfig{
			{ID: 1, Depth: 1},
			{ID: 2, Depth: 1, Sequential: true},
		},
	}

	summaries, dir, err := Run(t.TempDir(), cfg, game.NewTables())

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	for i, summary := range summaries {
		require.Equal(t, cfg.Agents[i].ID, summary.Agent)
		require.Equal(t, 2, summary.Games)
		require.Equal(t, 10.0, summary.MeanMoves, "Short games should hit the move cap")
	}
	require.Equal(t, summaries[0].MeanScore, summaries[1].MeanScore, "Both dispatchers should play the same games")

	require.Equal(t, 2, countRows(t, filepath.Join(dir, "agent_configs.csv")))
	require.Equal(t, 4, countRows(t, filepath.Join(dir, "game_records.csv")))
	require.Equal(t, 40, countRows(t, filepath.Join(dir, "move_records.csv")))
}

func TestSummarize(t *testing.T) {
	t.Run("summarizing no games", func(t *testing.T) {
		require.Equal(t, Summary{Agent: 3}, Summarize(3, nil))
	})

	t.Run("summarizing scores and tiles", func(t *testing.T) {
		records := []metrics.GameRecord{
			{ID: 1, GameMetric: metrics.GameMetric{Score: 1000, MaxTile: 512, TotalMoves: 100, Duration: time.Second}},
			{ID: 2, GameMetric: metrics.GameMetric{Score: 3000, MaxTile: 2048, TotalMoves: 300, Duration: time.Second}},
			{ID: 3, GameMetric: metrics.GameMetric{Score: 2000, MaxTile: 1024, TotalMoves: 200, Duration: time.Second}},
		}

		summary := Summarize(1, records)

		require.Equal(t, 3, summary.Games)
		require.InDelta(t, 2000.0, summary.MeanScore, 1e-9)
		require.InDelta(t, 1000.0, summary.StdDevScore, 1e-9)
		require.InDelta(t, 2000.0, summary.MedianScore, 1e-9)
		require.InDelta(t, 200.0, summary.MeanMoves, 1e-9)
		require.InDelta(t, 3584.0/3, summary.MeanMaxTile, 1e-9)
		require.Equal(t, 2048, summary.BestTile)
		require.Equal(t, 2, summary.BestGame)
		require.InDelta(t, 1.0/3, summary.WinRate, 1e-9)
		require.InDelta(t, 200.0, summary.MovesPerSec, 1e-9)
	})
}
