package engine

import "coup/experiments/metrics"

type Runner interface {
	// Run plays a game until there's a winner or the move limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
