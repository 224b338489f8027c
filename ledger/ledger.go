// Package ledger tracks settled versus unsettled cash across a trading
// session under simplified T+1 settlement.
package ledger

import "time"

// Pending is sale proceeds waiting out the T+1 settlement window.
type Pending struct {
	Amount     float64
	SettleDate time.Time
}

// Ledger is the per-session cash position. It is owned by a single
// orchestrating loop and is not safe for concurrent use. The ledger
// enforces no bounds of its own: the risk engine's sizing keeps settled
// cash from going negative.
type Ledger struct {
	settledCash float64
	pending     []Pending
}

// New creates a ledger seeded with the session's starting settled cash,
// derived from historical equity by the caller.
func New(settledCash float64) *Ledger {
	return &Ledger{settledCash: settledCash}
}

// SettledCash is the cash available for new purchases right now.
func (l *Ledger) SettledCash() float64 { return l.settledCash }

// Pending returns the proceeds still waiting to settle, in fill order.
func (l *Ledger) Pending() []Pending { return l.pending }

// OnBuyFill debits the purchase cost from settled cash.
func (l *Ledger) OnBuyFill(cost float64) {
	l.settledCash -= cost
}

// OnSellFill queues sale proceeds to settle on the next business day
// after the trade date. Proceeds do not touch settled cash until
// RollSettlements reaches the settle date.
func (l *Ledger) OnSellFill(proceeds float64, tradeDate time.Time) {
	l.pending = append(l.pending, Pending{
		Amount:     proceeds,
		SettleDate: truncateToDay(NextBusinessDay(tradeDate)),
	})
}

// RollSettlements moves every pending amount whose settle date is on or
// before currentDate into settled cash. Calling it again with the same
// or an earlier date is a no-op: matured entries are gone.
func (l *Ledger) RollSettlements(currentDate time.Time) {
	day := truncateToDay(currentDate)
	remaining := l.pending[:0]
	for _, p := range l.pending {
		if !truncateToDay(p.SettleDate).After(day) {
			l.settledCash += p.Amount
		} else {
			remaining = append(remaining, p)
		}
	}
	l.pending = remaining
}

// NextBusinessDay returns the next weekday after d. Fills dated Friday
// or Saturday settle the following Monday. Market holidays are ignored;
// that is a deliberate simplification of this ledger.
func NextBusinessDay(d time.Time) time.Time {
	// Monday=0 ... Sunday=6 indexing.
	weekday := (int(d.Weekday()) + 6) % 7
	offset := 1
	if weekday >= 4 {
		offset = 7 - weekday
	}
	return d.AddDate(0, 0, offset)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
