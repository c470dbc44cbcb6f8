package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Local struct {
	State    *game.ConnectFour
	Agents   []Agent // Indexed by player: First then Second
	MaxTurns int
	// OnMove is called after every move, e.g. to print the board
	OnMove func(player game.Player, move game.Move, state *game.ConnectFour)
}

func LocalEngine(agents []Agent, state *game.ConnectFour) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if state == nil {
		state = game.NewConnectFour()
	}

	return &Local{
		State:    state,
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

func agentIndex(p game.Player) int {
	if p == game.First {
		return 0
	}
	return 1
}

// Run executes the game loop until the game is over.
func (e *Local) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.State.Player())

	turn := 1
	for e.State.Status() == game.Ongoing && turn <= e.MaxTurns {
		player := e.State.Player()

		move, searchMetric, err := e.Agents[agentIndex(player)].FindMove(e.State)
		if err != nil {
			return e.State.Status(), gameMetric, moveMetrics, fmt.Errorf("turn %d (%s): %w", turn, player, err)
		}
		if err := e.State.Play(move); err != nil {
			return e.State.Status(), gameMetric, moveMetrics, fmt.Errorf("turn %d (%s): %w", turn, player, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player.String(),
			Move:         int(move),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %s plays %d", turn, player, move)

		if e.OnMove != nil {
			e.OnMove(player, move, e.State)
		}
		turn++
	}

	if e.State.Status() == game.Ongoing {
		log.Warn().Msgf("stopped after %d turns without a result", e.MaxTurns)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = e.State.Status().String()
	return e.State.Status(), gameMetric, moveMetrics, nil
}
