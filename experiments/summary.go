package experiments

import (
	"pacman/experiments/metrics"
	"time"

	"gonum.org/v1/gonum/stat"
)

// summarize aggregates records per config and layout, in the order given.
func summarize(configs []metrics.AgentConfig, layouts []string, records []metrics.GameRecord) []metrics.SummaryRecord {
	summary := []metrics.SummaryRecord{}
	for _, config := range configs {
		for _, layout := range layouts {
			scores := []float64{}
			decisions := []float64{}
			wins := 0
			for _, r := range records {
				if r.Agent != config.ID || r.Layout != layout {
					continue
				}
				scores = append(scores, r.Score)
				decisions = append(decisions, r.AverageDecision.Seconds())
				if r.Win {
					wins++
				}
			}
			if len(scores) == 0 {
				continue
			}

			summary = append(summary, metrics.SummaryRecord{
				Agent:           config.ID,
				Layout:          layout,
				Games:           len(scores),
				Wins:            wins,
				AverageScore:    stat.Mean(scores, nil),
				AverageDecision: time.Duration(stat.Mean(decisions, nil) * float64(time.Second)),
			})
		}
	}
	return summary
}
