package searcher

import (
	"connect4/game"
	"connect4/utils"
)

// node holds search statistics for one position. Positions are not stored:
// they are reached by replaying moves against the shared state.
type node struct {
	parent   *node // nil for the root
	move     game.Move
	explored []game.Move // keys of children, in insertion order
	children []*node
	untried  []game.Move
	visits   int
	valueSum float64
}

func newNode(parent *node, move game.Move, moves []game.Move) *node {
	untried := make([]game.Move, len(moves))
	copy(untried, moves)
	return &node{
		parent:   parent,
		move:     move,
		explored: make([]game.Move, 0, len(moves)),
		children: make([]*node, 0, len(moves)),
		untried:  untried,
	}
}

func (n *node) isFullyExpanded() bool {
	return len(n.untried) == 0
}

// addChild registers a child for move. moves are the legal moves at the child.
func (n *node) addChild(move game.Move, moves []game.Move) *node {
	child := newNode(n, move, moves)
	n.untried = utils.Remove(n.untried, move)
	n.explored = append(n.explored, move)
	n.children = append(n.children, child)
	return child
}

func (n *node) update(result float64) {
	n.visits++
	n.valueSum += result
}

// mostVisited returns the first child with the highest visit count.
func (n *node) mostVisited() *node {
	var best *node
	for _, child := range n.children {
		if best == nil || child.visits > best.visits {
			best = child
		}
	}
	return best
}

// backup adds result to leaf and every ancestor up to the root.
func backup(leaf *node, result float64) {
	for n := leaf; n != nil; n = n.parent {
		n.update(result)
	}
}
