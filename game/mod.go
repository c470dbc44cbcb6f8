package game

// Move identifies a legal action. For Connect Four it is a column index.
type Move int

type Player int8

const (
	NoPlayer Player = iota
	First
	Second
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	}
	return NoPlayer
}

// Sign is the absolute outcome encoding of p: +1 for First, -1 for Second.
func (p Player) Sign() float64 {
	switch p {
	case First:
		return 1
	case Second:
		return -1
	}
	return 0
}

func (p Player) String() string {
	switch p {
	case First:
		return "RED"
	case Second:
		return "YELLOW"
	}
	return "NONE"
}

type Outcome int8

const (
	Ongoing Outcome = iota
	FirstWins
	SecondWins
	Draw
)

func (o Outcome) IsTerminal() bool {
	return o != Ongoing
}

// WonBy reports whether o is a win for p.
func (o Outcome) WonBy(p Player) bool {
	return (o == FirstWins && p == First) || (o == SecondWins && p == Second)
}

// Score encodes o as +1 (First wins), -1 (Second wins) or 0 (draw or ongoing).
func (o Outcome) Score() float64 {
	switch o {
	case FirstWins:
		return 1
	case SecondWins:
		return -1
	}
	return 0
}

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case FirstWins:
		return First.String()
	case SecondWins:
		return Second.String()
	}
	return "draw"
}

// winFor returns the outcome in which p has won.
func winFor(p Player) Outcome {
	if p == First {
		return FirstWins
	}
	return SecondWins
}

// State is a single mutable game position that is searched in place.
//
// Make applies a move. When the move ends the game (win or draw) the player to
// move is left unchanged, otherwise it passes to the opponent. Unmake reverts
// the latest application of a move and always passes the turn to the opponent,
// whether or not Make did. Callers reverting a terminal move must therefore
// realign the player with SetPlayer before calling Unmake.
//
// Passing a move that is not in LegalMoves, or unmaking anything but the most
// recent move, violates the contract and the behaviour is undefined.
type State interface {
	// LegalMoves is empty iff the position is terminal
	LegalMoves() []Move
	Make(Move)
	Unmake(Move)
	Status() Outcome
	Player() Player
	SetPlayer(Player)
	// IsEmpty reports whether no move has been played yet
	IsEmpty() bool
}
