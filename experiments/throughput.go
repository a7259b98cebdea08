package experiments

import (
	"pacman/experiments/metrics"
	"pacman/searcher"
)

// RunThroughputExperiment plays one game per variant and depth on layout so
// the move records show how many nodes each variant visits per decision.
func RunThroughputExperiment(layout string, maxDepth int, seed uint64) (string, error) {
	configs := []metrics.AgentConfig{}
	for v := searcher.Minimax; v <= searcher.ExpectimaxWeighted; v++ {
		for depth := 1; depth <= maxDepth; depth++ {
			configs = append(configs, metrics.AgentConfig{
				ID:      len(configs) + 1,
				Variant: v.String(),
				Depth:   depth,
				Ghosts:  "random",
			})
		}
	}

	return runExperiment("throughput", configs, []string{layout}, 1, seed)
}
