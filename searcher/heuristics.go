package searcher

import (
	"connect4/game"

	"golang.org/x/exp/rand"
)

// isImmediateWin reports whether playing move wins on the spot for the player
// to move. The state is restored before returning.
func isImmediateWin(state game.State, move game.Move) bool {
	mover := state.Player()
	state.Make(move)
	won := state.Status().WonBy(mover)
	revert(state, move, mover)
	return won
}

func findWinningMove(state game.State, moves []game.Move) (game.Move, bool) {
	for _, move := range moves {
		if isImmediateWin(state, move) {
			return move, true
		}
	}
	return 0, false
}

// findBlockingMove looks one reply deep. A move is unsafe when the opponent
// can win right after it. When some moves are unsafe and others are not, a
// random safe move is returned. Moves that end the game are left out of the
// analysis. No move is recommended when nothing is threatened or when every
// move loses.
func findBlockingMove(state game.State, moves []game.Move, rng *rand.Rand) (game.Move, bool) {
	safe := make([]game.Move, 0, len(moves))
	threatened := false

	for _, move := range moves {
		mover := state.Player()
		state.Make(move)
		if state.Status().IsTerminal() {
			revert(state, move, mover)
			continue
		}

		_, loses := findWinningMove(state, state.LegalMoves())
		revert(state, move, mover)

		if loses {
			threatened = true
		} else {
			safe = append(safe, move)
		}
	}

	if !threatened || len(safe) == 0 {
		return 0, false
	}
	return safe[rng.Intn(len(safe))], true
}
