package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"gopkg.in/yaml.v3"
)

type AgentConfig struct {
	ID          int     `yaml:"id"`
	Iterations  int     `yaml:"iterations"`
	Exploration float64 `yaml:"exploration"`
	Heuristics  bool    `yaml:"heuristics"`
	Seed        uint64  `yaml:"seed"`
}

// UnmarshalYAML turns heuristics on unless the agent sets it explicitly.
func (c *AgentConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain AgentConfig
	raw := plain{Heuristics: true}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*c = AgentConfig(raw)
	return nil
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing First
	Agent2 int // AgentConfig.ID playing Second
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Flat rows for the parquet files.
type gameRow struct {
	ID         int32  `parquet:"id"`
	Agent1     int32  `parquet:"agent1"`
	Agent2     int32  `parquet:"agent2"`
	Winner     string `parquet:"winner,dict"`
	StartTime  int64  `parquet:"start_time_ms"`
	DurationMs int64  `parquet:"duration_ms"`
	TotalMoves int32  `parquet:"total_moves"`
}

type moveRow struct {
	Game         int32  `parquet:"game"`
	Step         int32  `parquet:"step"`
	Player       string `parquet:"player,dict"`
	Move         int32  `parquet:"move"`
	Decision     string `parquet:"decision,dict"`
	Iterations   int32  `parquet:"iterations"`
	DurationUs   int64  `parquet:"duration_us"`
	FullPlayouts int32  `parquet:"full_playouts"`
	RolloutPlies int32  `parquet:"rollout_plies"`
	RootVisits   int32  `parquet:"root_visits"`
}

type Writer struct {
	baseDir string
}

func NewWriter(outputDir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(outputDir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "iterations", "exploration", "heuristics", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Iterations),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			strconv.FormatBool(config.Heuristics),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "decision", "iterations", "duration", "full_playouts", "rollout_plies", "root_visits"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.Move),
			string(record.Decision),
			strconv.Itoa(record.Iterations),
			record.Duration.String(),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.RolloutPlies),
			strconv.Itoa(record.RootVisits),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

// WriteParquet stores game and move records as zstd compressed parquet files.
func (w *Writer) WriteParquet(games []GameRecord, moves []MoveRecord) error {
	gameRows := make([]gameRow, 0, len(games))
	for _, record := range games {
		gameRows = append(gameRows, gameRow{
			ID:         int32(record.ID),
			Agent1:     int32(record.Agent1),
			Agent2:     int32(record.Agent2),
			Winner:     record.Winner,
			StartTime:  record.StartTime.UnixMilli(),
			DurationMs: record.Duration.Milliseconds(),
			TotalMoves: int32(record.TotalMoves),
		})
	}
	if err := writeParquet(filepath.Join(w.baseDir, "game_records.parquet"), gameRows, "game_record_v1"); err != nil {
		return err
	}

	moveRows := make([]moveRow, 0, len(moves))
	for _, record := range moves {
		moveRows = append(moveRows, moveRow{
			Game:         int32(record.Game),
			Step:         int32(record.Step),
			Player:       record.Player,
			Move:         int32(record.Move),
			Decision:     string(record.Decision),
			Iterations:   int32(record.Iterations),
			DurationUs:   record.Duration.Microseconds(),
			FullPlayouts: int32(record.FullPlayouts),
			RolloutPlies: int32(record.RolloutPlies),
			RootVisits:   int32(record.RootVisits),
		})
	}
	return writeParquet(filepath.Join(w.baseDir, "move_records.parquet"), moveRows, "move_record_v1")
}

func writeParquet[T any](outPath string, rows []T, schema string) error {
	// Write to a temp file and rename atomically.
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schema),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}
