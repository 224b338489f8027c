package agent

import (
	"github.com/shumcap/desk/market"
	"github.com/shumcap/desk/order"
)

func mockCandidate(symbol, strategyID string, entry, stop, takeProfit float64) order.Candidate {
	return order.Candidate{
		Symbol:      symbol,
		Side:        "BUY",
		Entry:       order.Leg{Type: "LIMIT", Price: entry},
		Stop:        order.Leg{Type: "STOP", Price: stop},
		TakeProfit:  order.Leg{Type: "LIMIT", Price: takeProfit},
		TimeInForce: "DAY",
		SetupTags:   []string{strategyID, "mock"},
		ExpectedR:   (takeProfit - entry) / (entry - stop),
		Confidence:  0.6,
		Notes:       "Deterministic mock candidate",
	}
}

func marketSnapshot(symbol string) market.Snapshot {
	return market.Snapshot{
		Symbol:    symbol,
		Last:      100.0,
		Bid:       99.9,
		Ask:       100.1,
		Spread:    0.002,
		AvgVolume: 6_000_000,
	}
}
