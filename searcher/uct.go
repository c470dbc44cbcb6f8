package searcher

import "math"

// uctScore is the UCT value of child seen from n. Unvisited children score
// +Inf so that every child is tried once before exploitation kicks in.
func (n *node) uctScore(child *node, c float64) float64 {
	if child.visits == 0 {
		return math.Inf(1)
	}

	exploit := child.valueSum / float64(child.visits)
	explore := c * math.Sqrt(math.Log(float64(max(1, n.visits)))/float64(child.visits))
	return exploit + explore
}

// bestChildUCT returns the child with the highest UCT score. Ties go to the
// child expanded first.
func (n *node) bestChildUCT(c float64) *node {
	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		score := n.uctScore(child, c)
		if best == nil || score > maxScore {
			best = child
			maxScore = score
		}
	}
	return best
}
