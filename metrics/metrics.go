// Package metrics has the small helpers behind the end-of-session summary.
package metrics

// RMultiple expresses realized P&L in units of the risk taken on.
func RMultiple(pnl, riskPerTrade float64) float64 {
	if riskPerTrade == 0 {
		return 0
	}
	return pnl / riskPerTrade
}

// Summary is one day's journalized result.
type Summary struct {
	Date      string  `json:"date"`
	PnL       float64 `json:"pnl"`
	Trades    int     `json:"trades"`
	RMultiple float64 `json:"r_multiple"`
}

// DailySummary builds the summary row for the day.
func DailySummary(date string, pnl float64, trades int, avgR float64) Summary {
	return Summary{
		Date:      date,
		PnL:       pnl,
		Trades:    trades,
		RMultiple: avgR,
	}
}
