package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"errors"
)

var ErrNoMove = errors.New("agent returned no move")

// Agent picks the next move for the player to move in state. It must leave
// state as it found it.
type Agent interface {
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}

type Engine interface {
	// Run plays a game till it is over or a max number of turns is reached
	Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error)
}
