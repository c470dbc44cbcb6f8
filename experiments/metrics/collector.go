package metrics

import (
	"time"
)

// Decision names the step of a search that produced the chosen move.
type Decision string

const (
	DecisionNone    Decision = "none"    // Terminal position, no move
	DecisionOpening Decision = "opening" // Fixed first move
	DecisionWin     Decision = "win"     // Immediate win found
	DecisionBlock   Decision = "block"   // Only safe moves against a threat
	DecisionSearch  Decision = "search"  // Most visited root child
	DecisionRandom  Decision = "random"  // Search expanded nothing
)

type SearchMetric struct {
	Iterations   int
	Duration     time.Duration
	Episodes     int
	FullPlayouts int
	RolloutPlies int
	RootVisits   int
	Decision     Decision
}

type MoveMetric struct {
	Step   int
	Player string
	Move   int
	SearchMetric
}

type GameMetric struct {
	Winner     string // Outcome of the game: a player name or "draw"
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(iterations int)
	SetDecision(decision Decision)
	SetRootVisits(visits int)
	AddEpisode()
	AddFullPlayout(plies int)
	Complete() SearchMetric
}

// collector is used by a single search at a time.
type collector struct {
	iterations   int
	startTime    time.Time
	episodes     int
	fullPlayouts int
	rolloutPlies int
	rootVisits   int
	decision     Decision
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int) {
	*m = collector{
		iterations: iterations,
		startTime:  time.Now(),
		decision:   DecisionNone,
	}
}

func (m *collector) SetDecision(decision Decision) {
	m.decision = decision
}

func (m *collector) SetRootVisits(visits int) {
	m.rootVisits = visits
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddFullPlayout(plies int) {
	m.fullPlayouts++
	m.rolloutPlies += plies
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Iterations:   m.iterations,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		FullPlayouts: m.fullPlayouts,
		RolloutPlies: m.rolloutPlies,
		RootVisits:   m.rootVisits,
		Decision:     m.decision,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int)          {}
func (m *dummyCollector) SetDecision(decision Decision) {}
func (m *dummyCollector) SetRootVisits(visits int)      {}
func (m *dummyCollector) AddEpisode()                   {}
func (m *dummyCollector) AddFullPlayout(plies int)      {}
func (m *dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
