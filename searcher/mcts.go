package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS chooses moves with UCT search over a single shared game state. Every
// move it plays on the state is undone before a call returns, so the caller
// sees the state exactly as it passed it in. The caller must not touch the
// state while a search is running.
type MCTS struct {
	exploration float64
	heuristics  bool
	opening     game.Move
	hasOpening  bool
	rng         *rand.Rand
	metrics     metrics.Collector
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithHeuristics toggles the immediate-win and blocking checks, both at the
// root and inside rollouts.
func WithHeuristics(enabled bool) Option {
	return func(m *MCTS) {
		m.heuristics = enabled
	}
}

func WithOpening(move game.Move) Option {
	return func(m *MCTS) {
		m.opening = move
		m.hasOpening = true
	}
}

func WithoutOpening() Option {
	return func(m *MCTS) {
		m.hasOpening = false
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		heuristics:  true,
		opening:     game.Opening,
		hasOpening:  true,
		rng:         rand.New(rand.NewSource(DefaultSeed)),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ChooseMove returns the move to play from state after the given number of
// search iterations. It returns false when the game is over.
func (m *MCTS) ChooseMove(state game.State, iterations int) (game.Move, bool) {
	move, ok, _ := m.FindMove(state, iterations)
	return move, ok
}

// FindMove is ChooseMove plus the metrics of the search. Metrics are only
// populated when the searcher was built WithMetrics.
func (m *MCTS) FindMove(state game.State, iterations int) (game.Move, bool, metrics.SearchMetric) {
	iterations = max(0, iterations)
	m.metrics.Start(iterations)
	move, ok := m.decide(state, iterations)
	return move, ok, m.metrics.Complete()
}

func (m *MCTS) decide(state game.State, iterations int) (game.Move, bool) {
	moves := state.LegalMoves()
	if state.Status() != game.Ongoing || len(moves) == 0 {
		m.metrics.SetDecision(metrics.DecisionNone)
		return 0, false
	}

	rootPlayer := state.Player()
	if m.hasOpening && rootPlayer == game.First && state.IsEmpty() {
		log.Debug().Msgf("%s plays opening move %d", rootPlayer, m.opening)
		m.metrics.SetDecision(metrics.DecisionOpening)
		return m.opening, true
	}

	if m.heuristics {
		if move, ok := findWinningMove(state, moves); ok {
			log.Debug().Msgf("%s wins immediately with %d", rootPlayer, move)
			m.metrics.SetDecision(metrics.DecisionWin)
			return move, true
		}
		if move, ok := findBlockingMove(state, moves, m.rng); ok {
			log.Debug().Msgf("%s blocks with %d", rootPlayer, move)
			m.metrics.SetDecision(metrics.DecisionBlock)
			return move, true
		}
	}

	// Outcomes are scored +1 for First; flip them so that the root player
	// always maximises.
	perspective := rootPlayer.Sign()

	root := newNode(nil, 0, moves)
	for i := 0; i < iterations; i++ {
		m.simulate(root, state, perspective)
		m.metrics.AddEpisode()
	}
	m.metrics.SetRootVisits(root.visits)

	best := root.mostVisited()
	if best == nil {
		move := moves[m.rng.Intn(len(moves))]
		log.Debug().Msgf("%s found no searched move, playing random move %d", rootPlayer, move)
		m.metrics.SetDecision(metrics.DecisionRandom)
		return move, true
	}

	log.Debug().Msgf("%s plays %d after %d iterations (%d visits, mean value %.3f)",
		rootPlayer, best.move, iterations, best.visits, best.valueSum/float64(best.visits))
	m.metrics.SetDecision(metrics.DecisionSearch)
	return best.move, true
}

// simulate runs one select, expand, rollout and backup episode. All moves are
// undone on return.
func (m *MCTS) simulate(root *node, state game.State, perspective float64) {
	var path, rollout line
	defer func() {
		rollout.unwind(state)
		path.unwind(state)
	}()

	leaf := m.selectThenExpand(root, state, &path)
	if state.Status() == game.Ongoing {
		m.rollout(state, &rollout)
	}
	backup(leaf, state.Status().Score()*perspective)
}

func (m *MCTS) selectThenExpand(root *node, state game.State, path *line) *node {
	n := root
	for state.Status() == game.Ongoing && n.isFullyExpanded() && len(n.children) > 0 {
		n = n.bestChildUCT(m.exploration)
		path.play(state, n.move)
	}

	// Terminal during selection: nothing to expand or simulate
	if state.Status() != game.Ongoing || n.isFullyExpanded() {
		return n
	}

	move := n.untried[m.rng.Intn(len(n.untried))]
	path.play(state, move)
	return n.addChild(move, state.LegalMoves())
}

func (m *MCTS) rollout(state game.State, rollout *line) {
	for state.Status() == game.Ongoing {
		rollout.play(state, m.rolloutMove(state))
	}
	m.metrics.AddFullPlayout(len(*rollout))
}
