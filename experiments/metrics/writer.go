package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AgentConfig describes the controlled agent and the ghosts it plays against.
type AgentConfig struct {
	ID      int
	Variant string // searcher variant name, or "reflex"
	Depth   int
	Ghosts  string // "random" or "directional"
}

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// SummaryRecord aggregates the games of one agent config on one layout.
type SummaryRecord struct {
	Agent           int // AgentConfig.ID
	Layout          string
	Games           int
	Wins            int
	AverageScore    float64
	AverageDecision time.Duration
}

type Writer struct {
	baseDir string
	runID   uuid.UUID
}

// NewWriter creates experiments/<name>/<run id> and writes every file there.
func NewWriter(name string) (*Writer, error) {
	return NewWriterAt("experiments", name)
}

func NewWriterAt(root, name string) (*Writer, error) {
	runID := uuid.New()
	baseDir := filepath.Join(root, name, runID.String())
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
		runID:   runID,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) RunID() uuid.UUID {
	return w.runID
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "variant", "depth", "ghosts"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Variant,
			strconv.Itoa(config.Depth),
			config.Ghosts,
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"run", "id", "agent", "layout", "win", "score", "moves", "start_time", "end_time", "duration", "average_decision"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			w.runID.String(),
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			record.Layout,
			strconv.FormatBool(record.Win),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			record.AverageDecision.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "agent", "variant", "depth", "duration", "nodes", "leaves", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Agent),
			record.Variant,
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteSummary(records []SummaryRecord) error {
	header := []string{"agent", "layout", "games", "wins", "average_score", "average_decision"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Agent),
			record.Layout,
			strconv.Itoa(record.Games),
			strconv.Itoa(record.Wins),
			strconv.FormatFloat(record.AverageScore, 'f', 2, 64),
			record.AverageDecision.String(),
		})
	}
	return w.write("summary.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", file)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s header", file)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s rows", file)
	}
	return nil
}
