// Package paper simulates bracket-order fills for approved candidates.
// Each trade opens and resolves immediately: a seeded coin flip decides
// whether the take-profit or the stop is hit one minute later.
package paper

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/shumcap/desk/id"
	"github.com/shumcap/desk/journal"
	"github.com/shumcap/desk/ledger"
	"github.com/shumcap/desk/order"
)

// Fill executes an approved bracket intent against the paper market,
// debiting and crediting the settlement ledger and journaling the trade
// and both fills. A nil rng gets one seeded from the candidate ref, so
// replaying the same session reproduces the same outcomes.
func Fill(
	j journal.Journal,
	intent order.Intent,
	qty int,
	c order.Candidate,
	led *ledger.Ledger,
	rng *rand.Rand,
	now time.Time,
) (journal.TradeRecord, error) {
	entryPrice := intent.Entry.Price
	stopPrice := intent.Stop.Price
	takeProfitPrice := intent.TakeProfit.Price

	led.OnBuyFill(entryPrice * float64(qty))

	trade := journal.TradeRecord{
		ID:           id.NewTrade(),
		Symbol:       c.Symbol,
		Side:         "BUY",
		Qty:          qty,
		EntryPrice:   entryPrice,
		OpenedAt:     now,
		StrategyID:   c.StrategyID,
		CandidateRef: c.Ref,
		Status:       "OPEN",
	}
	if err := j.InsertTrade(trade); err != nil {
		return trade, fmt.Errorf("insert trade: %w", err)
	}
	err := j.InsertFill(journal.FillRecord{
		TradeID:   trade.ID,
		Side:      "BUY",
		Price:     entryPrice,
		Qty:       qty,
		Timestamp: now,
	})
	if err != nil {
		return trade, fmt.Errorf("insert buy fill: %w", err)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(seedFor(c.Ref)))
	}
	win := rng.Float64() >= 0.5
	exitPrice := stopPrice
	if win {
		exitPrice = takeProfitPrice
	}
	exitTime := now.Add(time.Minute)
	pnl := (exitPrice - entryPrice) * float64(qty)

	led.OnSellFill(exitPrice*float64(qty), exitTime)

	err = j.InsertFill(journal.FillRecord{
		TradeID:   trade.ID,
		Side:      "SELL",
		Price:     exitPrice,
		Qty:       qty,
		Timestamp: exitTime,
	})
	if err != nil {
		return trade, fmt.Errorf("insert sell fill: %w", err)
	}
	if err := j.CloseTrade(trade.ID, exitPrice, pnl, exitTime); err != nil {
		return trade, fmt.Errorf("close trade: %w", err)
	}

	trade.ExitPrice = exitPrice
	trade.PnL = pnl
	trade.ClosedAt = exitTime
	trade.Status = "CLOSED"
	return trade, nil
}

func seedFor(ref string) int64 {
	h := fnv.New64a()
	h.Write([]byte(ref))
	return int64(h.Sum64())
}
