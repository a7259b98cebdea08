package engine

import "pacman/experiments/metrics"

type Engine interface {
	// Run plays a game till it is won or lost or a max number of moves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
