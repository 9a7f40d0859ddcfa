package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectorAggregation_EntryCreatesOnce(t *testing.T) {
	agg := NewSectorAggregation()

	first := agg.Entry("Tech")
	first.Count++

	second := agg.Entry("Tech")
	assert.Same(t, first, second)
	assert.Equal(t, 1, second.Count)
	assert.Equal(t, 1, agg.Len())
}

func TestSectorAggregation_Get(t *testing.T) {
	agg := NewSectorAggregation()
	agg.Entry("Tech")

	_, ok := agg.Get("Tech")
	assert.True(t, ok)

	_, ok = agg.Get("Health")
	assert.False(t, ok)
}

func TestSectorAggregation_SummariesInsertionOrder(t *testing.T) {
	agg := NewSectorAggregation()
	agg.Entry("Health")
	agg.Entry("Tech")
	agg.Entry("Energy")
	agg.Entry("Tech") // repeat must not change order

	var order []string
	for _, s := range agg.Summaries() {
		order = append(order, s.Sector)
	}
	assert.Equal(t, []string{"Health", "Tech", "Energy"}, order)
}

func TestSectorAggregation_Best(t *testing.T) {
	agg := NewSectorAggregation()
	agg.Entry("Health").AvgReturn = 2.5
	agg.Entry("Tech").AvgReturn = 7.0
	agg.Entry("Energy").AvgReturn = -1.0

	best := agg.Best()
	require.NotNil(t, best)
	assert.Equal(t, "Tech", best.Sector)
}

func TestSectorAggregation_BestTieKeepsFirstSeen(t *testing.T) {
	agg := NewSectorAggregation()
	agg.Entry("Health").AvgReturn = 7.0
	agg.Entry("Tech").AvgReturn = 7.0

	best := agg.Best()
	require.NotNil(t, best)
	assert.Equal(t, "Health", best.Sector)
}

func TestSectorAggregation_BestEmpty(t *testing.T) {
	assert.Nil(t, NewSectorAggregation().Best())
}
