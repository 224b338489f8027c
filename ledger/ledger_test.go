package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextBusinessDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday to tuesday", date(2024, time.January, 1), date(2024, time.January, 2)},
		{"thursday to friday", date(2024, time.January, 4), date(2024, time.January, 5)},
		{"friday to monday", date(2024, time.January, 5), date(2024, time.January, 8)},
		{"saturday to monday", date(2024, time.January, 6), date(2024, time.January, 8)},
		{"sunday to monday", date(2024, time.January, 7), date(2024, time.January, 8)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NextBusinessDay(tt.in))
		})
	}
}

func TestOnBuyFillDebitsSettledCash(t *testing.T) {
	t.Parallel()

	l := New(1000.0)
	l.OnBuyFill(200.0)

	assert.InDelta(t, 800.0, l.SettledCash(), 1e-9)
	assert.Empty(t, l.Pending())
}

func TestSellFillRoundTrip(t *testing.T) {
	t.Parallel()

	l := New(1000.0)
	friday := date(2024, time.January, 5)
	l.OnSellFill(300.0, friday)

	require.Len(t, l.Pending(), 1)
	assert.Equal(t, date(2024, time.January, 8), l.Pending()[0].SettleDate)
	assert.InDelta(t, 1000.0, l.SettledCash(), 1e-9)

	// before the settle date nothing moves
	l.RollSettlements(date(2024, time.January, 6))
	assert.InDelta(t, 1000.0, l.SettledCash(), 1e-9)
	assert.Len(t, l.Pending(), 1)

	// on the settle date the proceeds mature
	l.RollSettlements(date(2024, time.January, 8))
	assert.InDelta(t, 1300.0, l.SettledCash(), 1e-9)
	assert.Empty(t, l.Pending())

	// rolling again is a no-op
	l.RollSettlements(date(2024, time.January, 8))
	assert.InDelta(t, 1300.0, l.SettledCash(), 1e-9)
}

func TestRollSettlementsPartialMaturity(t *testing.T) {
	t.Parallel()

	l := New(0)
	l.OnSellFill(100.0, date(2024, time.January, 2)) // settles Wed Jan 3
	l.OnSellFill(200.0, date(2024, time.January, 4)) // settles Fri Jan 5

	l.RollSettlements(date(2024, time.January, 3))
	assert.InDelta(t, 100.0, l.SettledCash(), 1e-9)
	require.Len(t, l.Pending(), 1)
	assert.InDelta(t, 200.0, l.Pending()[0].Amount, 1e-9)
}

func TestCashConservationAcrossRolls(t *testing.T) {
	t.Parallel()

	l := New(500.0)
	l.OnSellFill(120.0, date(2024, time.January, 2))
	l.OnSellFill(80.0, date(2024, time.January, 5))

	total := func() float64 {
		sum := l.SettledCash()
		for _, p := range l.Pending() {
			sum += p.Amount
		}
		return sum
	}

	require.InDelta(t, 700.0, total(), 1e-9)
	l.RollSettlements(date(2024, time.January, 3))
	assert.InDelta(t, 700.0, total(), 1e-9)
	l.RollSettlements(date(2024, time.January, 10))
	assert.InDelta(t, 700.0, total(), 1e-9)
	assert.Empty(t, l.Pending())
}
