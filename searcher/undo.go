package searcher

import "connect4/game"

// revert undoes move, which mover just played. Make leaves the turn with the
// mover when the game ends but Unmake always passes the turn, so a terminal
// position is realigned first. Every path that undoes a move goes through here.
func revert(state game.State, move game.Move, mover game.Player) {
	if state.Status().IsTerminal() && state.Player() == mover {
		state.SetPlayer(mover.Other())
	}
	state.Unmake(move)
}

type ply struct {
	move  game.Move
	mover game.Player
}

// line is a stack of moves applied to the shared state, unwound in LIFO order.
type line []ply

func (l *line) play(state game.State, move game.Move) {
	mover := state.Player()
	state.Make(move)
	*l = append(*l, ply{move: move, mover: mover})
}

func (l *line) unwind(state game.State) {
	for i := len(*l) - 1; i >= 0; i-- {
		revert(state, (*l)[i].move, (*l)[i].mover)
	}
	*l = (*l)[:0]
}
