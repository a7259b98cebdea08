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
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("counts search work", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 2)
		for i := 0; i < 7; i++ {
			c.AddNode()
		}
		for i := 0; i < 4; i++ {
			c.AddLeaf()
		}
		c.AddCutoff()

		got := c.Complete()

		require.Equal(t, "minimax", got.Variant)
		require.Equal(t, 2, got.Depth)
		require.Equal(t, 7, got.Nodes)
		require.Equal(t, 4, got.Leaves)
		require.Equal(t, 1, got.Cutoffs)
		require.GreaterOrEqual(t, got.Duration, time.Duration(0))
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax", 2)
		c.AddNode()
		c.AddLeaf()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriterAt(root, "depth")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "depth", w.RunID().String()), w.Dir())

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{{ID: 1, Variant: "alphabeta", Depth: 3, Ghosts: "random"}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "variant", "depth", "ghosts"},
			{"1", "alphabeta", "3", "random"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:    4,
			Agent: 1,
			GameMetric: GameMetric{
				Layout:          "smallClassic",
				Win:             true,
				Score:           1234.5,
				StartTime:       start,
				EndTime:         start.Add(time.Second),
				Duration:        time.Second,
				TotalMoves:      99,
				AverageDecision: 3 * time.Millisecond,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{
			w.RunID().String(), "4", "1", "smallClassic", "true", "1234.5", "99",
			"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "3ms",
		}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 4,
			MoveMetric: MoveMetric{
				Step:         12,
				SearchMetric: SearchMetric{Variant: "minimax", Depth: 2, Nodes: 31, Leaves: 16},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"4", "12", "0", "minimax", "2", "0s", "31", "16", "0"}, rows[1])
	})

	t.Run("summary", func(t *testing.T) {
		err := w.WriteSummary([]SummaryRecord{{Agent: 2, Layout: "openClassic", Games: 10, Wins: 7, AverageScore: 512.346}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "summary.csv"))
		require.Equal(t, []string{"2", "openClassic", "10", "7", "512.35", "0s"}, rows[1])
	})
}
