package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(10)
	c.AddEpisode()
	c.AddEpisode()
	c.AddFullPlayout(7)
	c.AddFullPlayout(5)
	c.SetRootVisits(2)
	c.SetDecision(DecisionSearch)

	got := c.Complete()

	require.Equal(t, 10, got.Iterations)
	require.Equal(t, 2, got.Episodes)
	require.Equal(t, 2, got.FullPlayouts)
	require.Equal(t, 12, got.RolloutPlies)
	require.Equal(t, 2, got.RootVisits)
	require.Equal(t, DecisionSearch, got.Decision)

	c.Start(3)
	got = c.Complete()
	require.Equal(t, 0, got.Episodes, "Start should reset the counters")
	require.Equal(t, DecisionNone, got.Decision)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(10)
	c.AddEpisode()
	c.SetDecision(DecisionWin)

	require.Equal(t, SearchMetric{}, c.Complete())
}
