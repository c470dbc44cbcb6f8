package searcher

import "connect4/game"

// rolloutMove picks the next simulation move: an immediate win, else a block,
// else a uniformly random legal move.
func (m *MCTS) rolloutMove(state game.State) game.Move {
	moves := state.LegalMoves()
	if m.heuristics {
		if move, ok := findWinningMove(state, moves); ok {
			return move
		}
		if move, ok := findBlockingMove(state, moves, m.rng); ok {
			return move
		}
	}
	return moves[m.rng.Intn(len(moves))]
}
