package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Columns = 7
	Rows    = 6
	Connect = 4 // Discs in a row needed to win
)

// Opening is the strongest first move: the centre column.
const Opening Move = Columns / 2

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// ConnectFour is a 7x6 Connect Four position. It is a plain value, so a copy
// of the struct is a full snapshot of the game.
type ConnectFour struct {
	board   [Columns][Rows]Player // board[column][row], row 0 is the bottom
	heights [Columns]int
	plies   int
	player  Player
	status  Outcome
}

// NewConnectFour returns an empty board with First to move.
func NewConnectFour() *ConnectFour {
	return &ConnectFour{player: First}
}

// FromMoves replays moves from the empty board.
func FromMoves(moves ...Move) (*ConnectFour, error) {
	g := NewConnectFour()
	for i, move := range moves {
		if err := g.Play(move); err != nil {
			return nil, fmt.Errorf("replaying move %d (column %d): %w", i+1, move, err)
		}
	}
	return g, nil
}

func (g *ConnectFour) LegalMoves() []Move {
	if g.status != Ongoing {
		return nil
	}
	moves := make([]Move, 0, Columns)
	for col := 0; col < Columns; col++ {
		if g.heights[col] < Rows {
			moves = append(moves, Move(col))
		}
	}
	return moves
}

func (g *ConnectFour) IsLegal(move Move) bool {
	return g.status == Ongoing && move >= 0 && move < Columns && g.heights[move] < Rows
}

// Play is the checked form of Make for moves coming from outside the engine.
func (g *ConnectFour) Play(move Move) error {
	if g.status != Ongoing {
		return ErrGameOver
	}
	if !g.IsLegal(move) {
		return fmt.Errorf("%w: column %d", ErrIllegalMove, move)
	}
	g.Make(move)
	return nil
}

func (g *ConnectFour) Make(move Move) {
	if !g.IsLegal(move) {
		panic(fmt.Sprintf("make: column %d is not playable", move))
	}

	col := int(move)
	row := g.heights[col]
	g.board[col][row] = g.player
	g.heights[col]++
	g.plies++

	if g.connects(col, row) {
		g.status = winFor(g.player)
		return
	}
	if g.plies == Columns*Rows {
		g.status = Draw
		return
	}
	g.player = g.player.Other()
}

func (g *ConnectFour) Unmake(move Move) {
	col := int(move)
	if col < 0 || col >= Columns || g.heights[col] == 0 {
		panic(fmt.Sprintf("unmake: column %d is empty", move))
	}

	g.heights[col]--
	g.board[col][g.heights[col]] = NoPlayer
	g.plies--
	g.status = Ongoing
	g.player = g.player.Other()
}

func (g *ConnectFour) Status() Outcome {
	return g.status
}

func (g *ConnectFour) Player() Player {
	return g.player
}

func (g *ConnectFour) SetPlayer(p Player) {
	g.player = p
}

func (g *ConnectFour) IsEmpty() bool {
	return g.plies == 0
}

// Plies is the number of discs on the board.
func (g *ConnectFour) Plies() int {
	return g.plies
}

// At returns the owner of a cell, NoPlayer when it is empty.
func (g *ConnectFour) At(col, row int) Player {
	return g.board[col][row]
}

var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// connects reports whether the disc at (col, row) completes a line.
func (g *ConnectFour) connects(col, row int) bool {
	p := g.board[col][row]
	for _, d := range directions {
		count := 1 + g.run(col, row, d[0], d[1], p) + g.run(col, row, -d[0], -d[1], p)
		if count >= Connect {
			return true
		}
	}
	return false
}

func (g *ConnectFour) run(col, row, dc, dr int, p Player) int {
	n := 0
	for c, r := col+dc, row+dr; c >= 0 && c < Columns && r >= 0 && r < Rows; c, r = c+dc, r+dr {
		if g.board[c][r] != p {
			break
		}
		n++
	}
	return n
}

func (g *ConnectFour) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			switch g.board[col][row] {
			case First:
				sb.WriteByte('R')
			case Second:
				sb.WriteByte('Y')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < Columns; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", col)
	}
	return sb.String()
}
