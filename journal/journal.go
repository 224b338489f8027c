// Package journal persists the desk's trades, fills, incidents and daily
// metrics. The journal is write-mostly during a session; the only read
// path is the session-state query that seeds the next day's equity and
// loss streak.
package journal

import (
	"time"

	"github.com/shumcap/desk/metrics"
)

// TradeRecord is one bracket trade's lifecycle. Exit fields are zero
// until the trade closes.
type TradeRecord struct {
	ID           string
	Symbol       string
	Side         string
	Qty          int
	EntryPrice   float64
	ExitPrice    float64
	PnL          float64
	OpenedAt     time.Time
	ClosedAt     time.Time
	StrategyID   string
	CandidateRef string
	Status       string // OPEN or CLOSED
}

// FillRecord is one execution against a trade.
type FillRecord struct {
	TradeID   string
	Side      string
	Price     float64
	Qty       int
	Timestamp time.Time
}

// Incident is an operational event worth keeping (session halts,
// data-quality failures).
type Incident struct {
	CreatedAt time.Time
	Severity  string
	Message   string
}

// SessionState is what the orchestrator needs before the first approval
// call of a session.
type SessionState struct {
	Equity            float64
	DailyPnL          float64
	ConsecutiveLosses int
}

// Journal is the persistence surface the orchestrator depends on.
type Journal interface {
	InsertTrade(TradeRecord) error
	CloseTrade(id string, exitPrice, pnl float64, closedAt time.Time) error
	InsertFill(FillRecord) error
	InsertMetric(metrics.Summary) error
	InsertIncident(Incident) error
	FetchSessionState(baseEquity float64, today time.Time) (SessionState, error)
	Close() error
}
