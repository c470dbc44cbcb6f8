package engine

import (
	"bufio"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"connect4/utils"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MCTSAgent searches a fixed number of iterations per move.
type MCTSAgent struct {
	Searcher   *searcher.MCTS
	Iterations int
}

func (a *MCTSAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	move, ok, metric := a.Searcher.FindMove(state, a.Iterations)
	if !ok {
		return 0, metric, ErrNoMove
	}
	return move, metric, nil
}

// HumanAgent reads columns from In, prompting on Out until a legal one is given.
type HumanAgent struct {
	In  *bufio.Scanner
	Out io.Writer
}

func NewHumanAgent(in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{In: bufio.NewScanner(in), Out: out}
}

func (h *HumanAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return 0, metrics.SearchMetric{}, ErrNoMove
	}

	fmt.Fprintf(h.Out, "%s to move. Legal moves: %v\n", state.Player(), legal)
	for {
		fmt.Fprintf(h.Out, "Choose a column (0-%d): ", game.Columns-1)
		if !h.In.Scan() {
			if err := h.In.Err(); err != nil {
				return 0, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", err)
			}
			return 0, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", io.ErrUnexpectedEOF)
		}

		col, err := strconv.Atoi(strings.TrimSpace(h.In.Text()))
		if err != nil {
			fmt.Fprintf(h.Out, "Please enter a number 0-%d.\n", game.Columns-1)
			continue
		}
		if !utils.Contains(legal, game.Move(col)) {
			fmt.Fprintf(h.Out, "Illegal move. Legal moves are: %v\n", legal)
			continue
		}
		return game.Move(col), metrics.SearchMetric{}, nil
	}
}
