package searcher

import (
	"connect4/game"
	"connect4/utils"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// trackedState checks that every Unmake reverts the most recent Make.
type trackedState struct {
	*game.ConnectFour
	made    []game.Move
	makes   int
	unmakes int
	t       *testing.T
}

func track(t *testing.T, g *game.ConnectFour) *trackedState {
	return &trackedState{ConnectFour: g, t: t}
}

func (s *trackedState) Make(move game.Move) {
	s.ConnectFour.Make(move)
	s.made = append(s.made, move)
	s.makes++
}

func (s *trackedState) Unmake(move game.Move) {
	require.NotEmpty(s.t, s.made, "Unmake without a pending Make")
	require.Equal(s.t, s.made[len(s.made)-1], move, "Unmake out of LIFO order")
	s.made = s.made[:len(s.made)-1]
	s.unmakes++
	s.ConnectFour.Unmake(move)
}

func position(t *testing.T, moves ...game.Move) *game.ConnectFour {
	g, err := game.FromMoves(moves...)
	require.NoError(t, err)
	return g
}

// child returns the child reached by move, nil if it was never expanded.
func (n *node) child(move game.Move) *node {
	i := utils.FindIndex(n.explored, move)
	if i < 0 {
		return nil
	}
	return n.children[i]
}

func TestNodeAddChild(t *testing.T) {
	root := newNode(nil, 0, []game.Move{0, 1, 2})

	child := root.addChild(1, []game.Move{0, 2})

	require.Same(t, root, child.parent, "Child should point back to its parent")
	require.Equal(t, game.Move(1), child.move)
	require.Equal(t, []game.Move{0, 2}, child.untried, "Child should start with its own legal moves")
	require.Equal(t, []game.Move{0, 2}, root.untried, "Expanded move should leave the untried set")
	require.Same(t, child, root.child(1))
	require.Nil(t, root.child(0), "Unexpanded move should have no child")
	require.False(t, root.isFullyExpanded())

	root.addChild(0, nil)
	root.addChild(2, nil)

	require.True(t, root.isFullyExpanded())
	require.Equal(t, []game.Move{1, 0, 2}, root.explored, "Children should keep insertion order")
}

func TestNodeUntriedIsCopied(t *testing.T) {
	moves := []game.Move{0, 1}
	n := newNode(nil, 0, moves)

	n.addChild(0, nil)

	require.Equal(t, []game.Move{0, 1}, moves, "Caller's legal moves should not be modified")
}

func TestBackup(t *testing.T) {
	root := newNode(nil, 0, []game.Move{0})
	child := root.addChild(0, []game.Move{1})
	grandChild := child.addChild(1, nil)
	sibling := newNode(root, 5, nil)

	backup(grandChild, -1)
	backup(child, 1)

	require.Equal(t, 2, root.visits)
	require.Equal(t, 0.0, root.valueSum)
	require.Equal(t, 2, child.visits)
	require.Equal(t, 1, grandChild.visits)
	require.Equal(t, -1.0, grandChild.valueSum)
	require.Equal(t, 0, sibling.visits, "Nodes off the path should not change")
}

func TestMostVisited(t *testing.T) {
	t.Run("highest visit count wins", func(t *testing.T) {
		root := newNode(nil, 0, []game.Move{0, 1, 2})
		root.addChild(0, nil).visits = 3
		root.addChild(1, nil).visits = 7
		root.addChild(2, nil).visits = 5

		require.Equal(t, game.Move(1), root.mostVisited().move)
	})

	t.Run("ties go to the first child", func(t *testing.T) {
		root := newNode(nil, 0, []game.Move{4, 2})
		root.addChild(4, nil).visits = 3
		root.addChild(2, nil).visits = 3

		require.Equal(t, game.Move(4), root.mostVisited().move)
	})

	t.Run("no children", func(t *testing.T) {
		require.Nil(t, newNode(nil, 0, []game.Move{0}).mostVisited())
	})
}

func TestUCTScore(t *testing.T) {
	t.Run("unvisited child scores infinity", func(t *testing.T) {
		root := &node{visits: 10}
		child := &node{parent: root}

		require.Equal(t, math.Inf(1), root.uctScore(child, DefaultExploration))
	})

	t.Run("visited child adds exploration bonus", func(t *testing.T) {
		root := &node{visits: 10}
		child := &node{parent: root, visits: 4, valueSum: 2}

		expected := 0.5 + 2*math.Sqrt(math.Log(10)/4)
		require.InDelta(t, expected, root.uctScore(child, 2), 1e-12)
	})

	t.Run("unvisited parent uses no exploration bonus", func(t *testing.T) {
		root := &node{}
		child := &node{parent: root, visits: 2, valueSum: -1}

		score := root.uctScore(child, DefaultExploration)

		require.False(t, math.IsNaN(score))
		require.Equal(t, -0.5, score)
	})
}

func TestBestChildUCT(t *testing.T) {
	t.Run("unvisited child beats a strong visited sibling", func(t *testing.T) {
		root := &node{visits: 100}
		strong := &node{parent: root, visits: 99, valueSum: 99}
		fresh := &node{parent: root}
		root.children = []*node{strong, fresh}

		require.Same(t, fresh, root.bestChildUCT(DefaultExploration))
	})

	t.Run("first of several unvisited children", func(t *testing.T) {
		root := &node{visits: 1}
		visited := &node{parent: root, visits: 1, valueSum: 1}
		first := &node{parent: root}
		second := &node{parent: root}
		root.children = []*node{visited, first, second}

		require.Same(t, first, root.bestChildUCT(DefaultExploration))
	})

	t.Run("exploitation decides between equal visit counts", func(t *testing.T) {
		root := &node{visits: 6}
		weak := &node{parent: root, visits: 3, valueSum: -1}
		strong := &node{parent: root, visits: 3, valueSum: 2}
		root.children = []*node{weak, strong}

		require.Same(t, strong, root.bestChildUCT(DefaultExploration))
	})

	t.Run("ties go to the first child", func(t *testing.T) {
		root := &node{visits: 4}
		a := &node{parent: root, visits: 2, valueSum: 1}
		b := &node{parent: root, visits: 2, valueSum: 1}
		root.children = []*node{a, b}

		require.Same(t, a, root.bestChildUCT(DefaultExploration))
	})
}
