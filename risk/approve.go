// Package risk is the deterministic approval gate for trade candidates.
// Every rejectable condition is an ordinary REJECT decision with a reason
// and a full constraint trace, never an error.
package risk

import (
	"math"

	"github.com/shumcap/desk/market"
	"github.com/shumcap/desk/order"
)

// Decision tags.
const (
	Approved = "APPROVE"
	Rejected = "REJECT"
)

// Constraint trace keys.
const (
	CheckDailyLoss   = "max_daily_loss"
	CheckWeeklyLoss  = "max_weekly_loss"
	CheckLossStreak  = "max_consecutive_losses"
	CheckSettledCash = "settled_cash"
	CheckLiquidity   = "spread_liquidity"
	CheckRewardRisk  = "rr_check"
)

// Breakdown is the sizing arithmetic behind a decision, in account
// currency. Zeroed on rejects.
type Breakdown struct {
	Equity               float64 `json:"equity"`
	RiskBudget           float64 `json:"risk_per_trade_usd"`
	StopDistance         float64 `json:"stop_distance"`
	ExpectedLoss         float64 `json:"expected_loss_usd"`
	DailyLossRemaining   float64 `json:"daily_loss_remaining_usd"`
	SettledCashRemaining float64 `json:"settled_cash_remaining_usd"`
}

// Decision is the engine's verdict on one candidate. The bracket intent
// is populated on both branches so rejects remain auditable.
type Decision struct {
	Decision    string          `json:"decision"`
	Symbol      string          `json:"symbol"`
	Side        string          `json:"side"`
	Qty         int             `json:"qty"`
	Risk        Breakdown       `json:"risk"`
	Constraints map[string]bool `json:"constraints_checked"`
	Intent      order.Intent    `json:"order_intent"`
	Reason      string          `json:"reason"`
}

// IsApproved reports whether the candidate passed every gate.
func (d Decision) IsApproved() bool { return d.Decision == Approved }

// Approve sizes and gates one candidate against the session's risk
// limits. Pure and deterministic: no I/O, no side effects, never fails.
// A nil snapshot disables the liquidity check (it passes trivially).
//
// Checks run in a fixed order: side, stop distance and reward/risk
// hard-reject immediately; the budget, streak, liquidity and cash
// constraints are all evaluated so the trace is complete even when an
// earlier one has already failed.
func Approve(c order.Candidate, cfg Config, st State, snap *market.Snapshot) Decision {
	entry := c.Entry.Price
	stopDistance := math.Abs(entry - c.Stop.Price)

	rr := 0.0
	if stopDistance > 0 {
		rr = (c.TakeProfit.Price - entry) / stopDistance
	}

	constraints := map[string]bool{
		CheckDailyLoss:   true,
		CheckWeeklyLoss:  true,
		CheckLossStreak:  true,
		CheckSettledCash: true,
		CheckLiquidity:   true,
		CheckRewardRisk:  rr >= cfg.MinRR,
	}

	if c.Side != "BUY" {
		return reject(c, constraints, "Only BUY allowed in v1")
	}
	if stopDistance <= 0 {
		return reject(c, constraints, "Invalid stop distance")
	}
	if rr < cfg.MinRR {
		constraints[CheckRewardRisk] = false
		return reject(c, constraints, "RR below minimum")
	}

	// Sizing caps at settled cash: proceeds still pending T+1 settlement
	// can never fund a new purchase.
	riskBudget := st.Equity * cfg.RiskPctPerTrade
	qtyByRisk := int(math.Floor(riskBudget / stopDistance))
	qtyByCash := 0
	if entry > 0 {
		qtyByCash = int(math.Floor(st.SettledCash / entry))
	}
	qty := min(qtyByRisk, qtyByCash)

	dailyLossRemaining := st.Equity*cfg.MaxDailyLossPct - st.DailyLoss
	weeklyLossRemaining := st.Equity*cfg.MaxWeeklyLossPct - st.WeeklyLoss

	if dailyLossRemaining <= 0 {
		constraints[CheckDailyLoss] = false
	}
	if weeklyLossRemaining <= 0 {
		constraints[CheckWeeklyLoss] = false
	}
	if st.ConsecutiveLosses >= cfg.MaxConsecutiveLosses {
		constraints[CheckLossStreak] = false
	}
	if snap != nil {
		if snap.Last < cfg.MinPrice || snap.AvgVolume < cfg.MinAvgVolume || snap.Spread > cfg.MaxSpread {
			constraints[CheckLiquidity] = false
		}
	}
	if st.SettledCash < entry {
		constraints[CheckSettledCash] = false
	}

	if qty < 1 {
		return reject(c, constraints, "Insufficient size")
	}
	for _, ok := range constraints {
		if !ok {
			return reject(c, constraints, "Constraint failure")
		}
	}

	return Decision{
		Decision: Approved,
		Symbol:   c.Symbol,
		Side:     "BUY",
		Qty:      qty,
		Risk: Breakdown{
			Equity:               st.Equity,
			RiskBudget:           riskBudget,
			StopDistance:         stopDistance,
			ExpectedLoss:         float64(qty) * stopDistance,
			DailyLossRemaining:   dailyLossRemaining,
			SettledCashRemaining: st.SettledCash,
		},
		Constraints: constraints,
		Intent:      order.IntentFor(c),
		Reason:      "Approved",
	}
}

func reject(c order.Candidate, constraints map[string]bool, reason string) Decision {
	side := c.Side
	if side == "" {
		side = "BUY"
	}
	return Decision{
		Decision:    Rejected,
		Symbol:      c.Symbol,
		Side:        side,
		Qty:         0,
		Constraints: constraints,
		Intent:      order.IntentFor(c),
		Reason:      reason,
	}
}
