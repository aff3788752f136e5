package engine

import (
	"errors"

	"connect4/experiments/metrics"
)

var ErrIllegalPick = errors.New("strategy picked an illegal column")

type Engine interface {
	// Run plays the game until it is won or drawn
	Run() (metrics.GameMetric, []metrics.MoveMetric, error)
}
