package agent

import (
	"context"
	"fmt"
	"time"
)

const timeFormat = "2006-01-02T15:04:05Z"

// Mock is a deterministic agent client: schema-conformant payloads with
// fixed pricing, so every PAPER session replays the same plan. The
// candidate levels are chosen to clear a 3:1 reward/risk gate.
type Mock struct {
	Universe []string
	Now      func() time.Time

	asOf string
}

func NewMock(universe []string) *Mock {
	if len(universe) == 0 {
		universe = []string{"SPY", "QQQ"}
	}
	m := &Mock{Universe: universe, Now: time.Now}
	m.asOf = m.Now().UTC().Format(timeFormat)
	return m
}

func (m *Mock) Plan(ctx context.Context) (Plan, error) {
	today := m.Now().UTC().Format("2006-01-02")

	plan := Plan{
		Session: SessionPlan{
			Mode:              "PAPER",
			Date:              today,
			Universe:          m.Universe,
			StrategiesEnabled: []string{"orb", "vwap"},
			MaxTradesToday:    3,
		},
		AgentCalls: []AgentCall{
			{Agent: "market_data", Universe: m.Universe},
			{Agent: "news_risk", Universe: m.Universe},
			{Agent: "strategy_orb", Universe: m.Universe},
			{Agent: "strategy_vwap", Universe: m.Universe},
		},
		Notes: "Deterministic mock CIO plan",
	}
	for _, sym := range m.Universe {
		plan.TradeIntents = append(plan.TradeIntents, TradeIntent{
			CandidateRef: fmt.Sprintf("orb:%s:%s", sym, m.asOf),
			Priority:     1,
		})
	}
	for _, sym := range m.Universe {
		plan.TradeIntents = append(plan.TradeIntents, TradeIntent{
			CandidateRef: fmt.Sprintf("vwap:%s:%s", sym, m.asOf),
			Priority:     2,
		})
	}
	return plan, nil
}

func (m *Mock) MarketData(ctx context.Context) (MarketDataPayload, error) {
	p := MarketDataPayload{
		AsOf:   m.asOf,
		OK:     true,
		Issues: []string{},
	}
	for _, sym := range m.Universe {
		p.Snapshots = append(p.Snapshots, marketSnapshot(sym))
	}
	return p, nil
}

func (m *Mock) NewsRisk(ctx context.Context) (NewsPayload, error) {
	return NewsPayload{
		AsOf:    m.asOf,
		Blocked: []string{},
		Notes:   "No adverse news detected",
	}, nil
}

func (m *Mock) StrategySignal(ctx context.Context, strategyID string) (SignalPayload, error) {
	const (
		entry      = 100.0
		stop       = 98.5
		takeProfit = 105.0
	)

	p := SignalPayload{
		AsOf:        m.asOf,
		StrategyID:  strategyID,
		Universe:    m.Universe,
		DataQuality: DataQuality{OK: true, Issues: []string{}},
	}
	for _, sym := range m.Universe {
		p.Candidates = append(p.Candidates, mockCandidate(sym, strategyID, entry, stop, takeProfit))
	}
	return p, nil
}
