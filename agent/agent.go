// Package agent defines the language-model agents that plan a trading
// session and synthesize trade candidates, plus a deterministic mock
// used in PAPER mode.
package agent

import (
	"context"

	"github.com/shumcap/desk/market"
	"github.com/shumcap/desk/order"
)

// Plan is the CIO agent's session plan: which agents to call and which
// candidates to try, in priority order.
type Plan struct {
	Session      SessionPlan   `json:"session_plan"`
	AgentCalls   []AgentCall   `json:"agent_calls"`
	TradeIntents []TradeIntent `json:"trade_intents"`
	Notes        string        `json:"notes,omitempty"`
}

type SessionPlan struct {
	Mode              string   `json:"mode"`
	Date              string   `json:"date"`
	Universe          []string `json:"universe"`
	StrategiesEnabled []string `json:"strategies_enabled"`
	MaxTradesToday    int      `json:"max_trades_today"`
}

type AgentCall struct {
	Agent    string   `json:"agent"`
	Universe []string `json:"universe,omitempty"`
}

// TradeIntent points at a strategy candidate by ref. Lower priority
// values are tried first.
type TradeIntent struct {
	CandidateRef string `json:"candidate_ref"`
	Priority     int    `json:"priority"`
}

// MarketDataPayload is the market-data agent's quality-gated snapshot set.
type MarketDataPayload struct {
	AsOf      string            `json:"as_of"`
	OK        bool              `json:"ok"`
	Issues    []string          `json:"issues"`
	Snapshots []market.Snapshot `json:"snapshots"`
}

// NewsPayload is the news-risk agent's verdict. A non-empty Blocked list
// halts the session.
type NewsPayload struct {
	AsOf    string   `json:"as_of"`
	Blocked []string `json:"blocked"`
	Notes   string   `json:"notes,omitempty"`
}

// DataQuality gates a strategy payload; a failed gate halts the session.
type DataQuality struct {
	OK     bool     `json:"ok"`
	Issues []string `json:"issues"`
}

// SignalPayload is one strategy agent's candidate batch.
type SignalPayload struct {
	AsOf        string            `json:"as_of"`
	StrategyID  string            `json:"strategy_id"`
	Universe    []string          `json:"universe"`
	Candidates  []order.Candidate `json:"candidates"`
	DataQuality DataQuality       `json:"data_quality"`
}

// Client is the agent surface the orchestrator talks to. The mock
// implementation is deterministic; a live implementation would call a
// model provider under the same contract.
type Client interface {
	Plan(ctx context.Context) (Plan, error)
	MarketData(ctx context.Context) (MarketDataPayload, error)
	NewsRisk(ctx context.Context) (NewsPayload, error)
	StrategySignal(ctx context.Context, strategyID string) (SignalPayload, error)
}
