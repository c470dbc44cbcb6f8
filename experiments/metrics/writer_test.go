package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

func sampleRecords() ([]GameRecord, []MoveRecord) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	games := []GameRecord{{
		ID:     1,
		Agent1: 1,
		Agent2: 2,
		GameMetric: GameMetric{
			Winner:     "RED",
			StartTime:  start,
			EndTime:    start.Add(2 * time.Second),
			Duration:   2 * time.Second,
			TotalMoves: 2,
		},
	}}
	moves := []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "RED", Move: 3, SearchMetric: SearchMetric{Decision: DecisionOpening}}},
		{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: "YELLOW", Move: 2, SearchMetric: SearchMetric{
			Iterations: 100, Episodes: 100, FullPlayouts: 98, RolloutPlies: 1500, RootVisits: 100, Decision: DecisionSearch,
		}}},
	}
	return games, moves
}

func TestWriterCSV(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "test")
	require.NoError(t, err)
	games, moves := sampleRecords()

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Iterations: 100, Exploration: 1.4, Heuristics: true, Seed: 7}}))
	require.NoError(t, w.WriteGameRecords(games))
	require.NoError(t, w.WriteMoveRecords(moves))

	f, err := os.Open(filepath.Join(w.Dir(), "move_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3, "Header plus one row per move")
	require.Equal(t, "decision", rows[0][4])
	require.Equal(t, []string{"1", "2", "YELLOW", "2", "search", "100", "0s", "98", "1500", "100"}, rows[2])

	f2, err := os.Open(filepath.Join(w.Dir(), "agent_configs.csv"))
	require.NoError(t, err)
	defer f2.Close()
	rows, err = csv.NewReader(f2).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"1", "100", "1.4", "true", "7"}, rows[1])
}

func TestWriterParquet(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "test")
	require.NoError(t, err)
	games, moves := sampleRecords()

	require.NoError(t, w.WriteParquet(games, moves))

	gameRows, err := parquet.ReadFile[gameRow](filepath.Join(w.Dir(), "game_records.parquet"))
	require.NoError(t, err)
	require.Equal(t, []gameRow{{
		ID: 1, Agent1: 1, Agent2: 2, Winner: "RED",
		StartTime: games[0].StartTime.UnixMilli(), DurationMs: 2000, TotalMoves: 2,
	}}, gameRows)

	moveRows, err := parquet.ReadFile[moveRow](filepath.Join(w.Dir(), "move_records.parquet"))
	require.NoError(t, err)
	require.Len(t, moveRows, 2)
	require.Equal(t, "opening", moveRows[0].Decision)
	require.Equal(t, int32(1500), moveRows[1].RolloutPlies)
	require.NoFileExists(t, filepath.Join(w.Dir(), "move_records.parquet.tmp"))
}
