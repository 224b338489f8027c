package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchFiltersToUniverse(t *testing.T) {
	t.Parallel()

	c := NewClient([]Snapshot{
		{Symbol: "SPY", Last: 470.5, Spread: 0.002, AvgVolume: 70_000_000},
		{Symbol: "TSLA", Last: 250.0, Spread: 0.01, AvgVolume: 90_000_000},
	})

	got := c.Fetch([]string{"SPY", "QQQ"})
	require.Len(t, got, 2)

	assert.InDelta(t, 470.5, got["SPY"].Last, 1e-9)
	assert.NotContains(t, got, "TSLA")

	// missing symbols get an optimistic default
	assert.InDelta(t, 100.0, got["QQQ"].Last, 1e-9)
	assert.InDelta(t, 6_000_000.0, got["QQQ"].AvgVolume, 1e-9)
}

func TestFetchEmptySeed(t *testing.T) {
	t.Parallel()

	got := NewClient(nil).Fetch([]string{"SPY"})
	require.Len(t, got, 1)
	assert.Equal(t, "SPY", got["SPY"].Symbol)
}
