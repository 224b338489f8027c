package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shumcap/desk/metrics"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	_, path := newTestSQLite(t)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table'
		AND name IN ('trades','fills','daily_metrics','incidents')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	require.NoError(t, rows.Err())

	assert.True(t, found["trades"])
	assert.True(t, found["fills"])
	assert.True(t, found["daily_metrics"])
	assert.True(t, found["incidents"])
}

func TestSQLiteTradeLifecycle(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	opened := time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC)
	closed := opened.Add(time.Minute)

	rec := TradeRecord{
		ID:           "TRADE-1",
		Symbol:       "SPY",
		Side:         "BUY",
		Qty:          250,
		EntryPrice:   100.0,
		OpenedAt:     opened,
		StrategyID:   "orb",
		CandidateRef: "orb:SPY:2024-01-02T14:30:00Z",
		Status:       "OPEN",
	}
	require.NoError(t, j.InsertTrade(rec))

	trades, err := j.ListTrades(10)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "OPEN", trades[0].Status)
	assert.Equal(t, 250, trades[0].Qty)

	require.NoError(t, j.CloseTrade("TRADE-1", 103.0, 750.0, closed))

	trades, err = j.ListTrades(10)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "CLOSED", trades[0].Status)
	assert.InDelta(t, 103.0, trades[0].ExitPrice, 1e-9)
	assert.InDelta(t, 750.0, trades[0].PnL, 1e-9)
	assert.True(t, trades[0].ClosedAt.Equal(closed))
}

func TestSQLiteFillsAndMetrics(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	ts := time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC)
	require.NoError(t, j.InsertFill(FillRecord{
		TradeID: "TRADE-1", Side: "BUY", Price: 100.0, Qty: 250, Timestamp: ts,
	}))
	require.NoError(t, j.InsertMetric(metrics.Summary{
		Date: "2024-01-02", PnL: 750.0, Trades: 1, RMultiple: 3.0,
	}))
	require.NoError(t, j.InsertIncident(Incident{
		CreatedAt: ts, Severity: "WARN", Message: "halting: data quality",
	}))

	summaries, err := j.ListMetrics(10)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "2024-01-02", summaries[0].Date)
	assert.InDelta(t, 750.0, summaries[0].PnL, 1e-9)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var fills, incidents int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM fills`).Scan(&fills))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM incidents`).Scan(&incidents))
	assert.Equal(t, 1, fills)
	assert.Equal(t, 1, incidents)
}

func TestFetchSessionState(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	// empty journal: base equity, no pnl, no streak
	st, err := j.FetchSessionState(100_000, today)
	require.NoError(t, err)
	assert.InDelta(t, 100_000.0, st.Equity, 1e-9)
	assert.InDelta(t, 0.0, st.DailyPnL, 1e-9)
	assert.Equal(t, 0, st.ConsecutiveLosses)

	insert := func(id string, pnl float64, closedAt time.Time) {
		t.Helper()
		require.NoError(t, j.InsertTrade(TradeRecord{
			ID: id, Symbol: "SPY", Side: "BUY", Qty: 10, EntryPrice: 100,
			OpenedAt: closedAt.Add(-time.Minute), StrategyID: "orb",
			CandidateRef: "ref-" + id, Status: "OPEN",
		}))
		require.NoError(t, j.CloseTrade(id, 100+pnl/10, pnl, closedAt))
	}

	// two losses today after an earlier win
	insert("T1", 500.0, today.Add(-48*time.Hour))
	insert("T2", -120.0, today.Add(10*time.Hour))
	insert("T3", -80.0, today.Add(11*time.Hour))

	st, err = j.FetchSessionState(100_000, today)
	require.NoError(t, err)
	assert.InDelta(t, 100_300.0, st.Equity, 1e-9) // 100k + 500 - 120 - 80
	assert.InDelta(t, -200.0, st.DailyPnL, 1e-9)
	assert.Equal(t, 2, st.ConsecutiveLosses)
}
