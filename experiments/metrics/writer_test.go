package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "experiments", "depth"), filepath.Dir(w.Dir()))

	t.Run("writing agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{{ID: 1, Depth: 4, Cutoff: 0.0001, Sequential: true}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "depth", "cutoff", "sequential"},
			{"1", "4", "0.0001", "true"},
		}, rows)
	})

	t.Run("writing game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:    1,
			Agent: 2,
			GameMetric: GameMetric{
				Seed:       9,
				StartTime:  start,
				EndTime:    start.Add(time.Second),
				Duration:   time.Second,
				TotalMoves: 500,
				MaxTile:    1024,
				Score:      9000,
				FinalBoard: 0xA,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "2", "9", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s",
			"500", "1024", "9000", "0x000000000000000a"}, rows[1])
	})

	t.Run("writing move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Move: "Left", Value: 12.5, MaxTile: 4,
				SearchMetric: SearchMetric{Evaluations: 10, DepthCutoffs: 9, TerminalNodes: 1, ChanceNodes: 3}}},
			{Game: 1, MoveMetric: MoveMetric{Step: 2, Move: "Up"}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "1", "Left", "12.50", "4", "0s", "10", "0", "9", "1", "3"}, rows[1])
		require.Equal(t, "Up", rows[2][2])
	})
}
