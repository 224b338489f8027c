// Package desk runs one paper-trading session end to end: plan the day,
// gate it on data quality and news risk, collect strategy candidates,
// and walk the trade intents through the risk engine in priority order.
package desk

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shumcap/desk/agent"
	"github.com/shumcap/desk/config"
	"github.com/shumcap/desk/journal"
	"github.com/shumcap/desk/ledger"
	"github.com/shumcap/desk/market"
	"github.com/shumcap/desk/metrics"
	"github.com/shumcap/desk/order"
	"github.com/shumcap/desk/paper"
	"github.com/shumcap/desk/risk"
)

// Session owns one trading day. It is single-threaded: the ledger and
// the running counters are touched only by Run, in intent priority
// order, so evaluation order decides cash availability.
type Session struct {
	Cfg     *config.Config
	Log     *logrus.Logger
	Journal journal.Journal
	Agents  agent.Client

	// Now and Rand exist for deterministic tests; both default sanely.
	Now  func() time.Time
	Rand *rand.Rand
}

func NewSession(cfg *config.Config, log *logrus.Logger, j journal.Journal, agents agent.Client) *Session {
	return &Session{
		Cfg:     cfg,
		Log:     log,
		Journal: j,
		Agents:  agents,
		Now:     time.Now,
	}
}

// Run executes the session. A nil summary with a nil error means the
// session halted on a quality or news gate; the halt is journaled as an
// incident.
func (s *Session) Run(ctx context.Context) (*metrics.Summary, error) {
	now := s.Now().UTC()
	today := now.Format("2006-01-02")

	state, err := s.Journal.FetchSessionState(s.Cfg.Desk.BaseEquity, now)
	if err != nil {
		return nil, fmt.Errorf("fetch session state: %w", err)
	}
	led := ledger.New(state.Equity)

	s.Log.WithFields(logrus.Fields{
		"date":               today,
		"equity":             state.Equity,
		"daily_pnl":          state.DailyPnL,
		"consecutive_losses": state.ConsecutiveLosses,
	}).Info("session start")

	plan, err := s.Agents.Plan(ctx)
	if err != nil {
		return nil, fmt.Errorf("cio plan: %w", err)
	}

	md, err := s.Agents.MarketData(ctx)
	if err != nil {
		return nil, fmt.Errorf("market data: %w", err)
	}
	if !md.OK {
		return nil, s.halt("market data quality issue: " + strings.Join(md.Issues, "; "))
	}

	news, err := s.Agents.NewsRisk(ctx)
	if err != nil {
		return nil, fmt.Errorf("news risk: %w", err)
	}
	if len(news.Blocked) > 0 {
		return nil, s.halt("news risk blocked symbols: " + strings.Join(news.Blocked, ", "))
	}

	candidates, err := s.collectCandidates(ctx, plan)
	if err != nil {
		return nil, err
	}
	if candidates == nil {
		// a strategy failed its data-quality gate; already journaled
		return nil, nil
	}

	snapshots := market.NewClient(md.Snapshots).Fetch(s.Cfg.Desk.Universe)

	intents := make([]agent.TradeIntent, len(plan.TradeIntents))
	copy(intents, plan.TradeIntents)
	sort.SliceStable(intents, func(i, j int) bool {
		return intents[i].Priority < intents[j].Priority
	})

	equity := state.Equity
	dailyPnL := state.DailyPnL
	consecutiveLosses := state.ConsecutiveLosses
	executed := 0
	totalR := 0.0

	for _, intent := range intents {
		if executed >= s.Cfg.Risk.MaxTradesPerDay {
			break
		}
		c, ok := candidates[intent.CandidateRef]
		if !ok {
			continue
		}

		var snap *market.Snapshot
		if sn, ok := snapshots[c.Symbol]; ok {
			snap = &sn
		}

		decision := risk.Approve(c, s.Cfg.Risk, risk.State{
			Equity:            equity,
			SettledCash:       led.SettledCash(),
			DailyLoss:         dailyPnL,
			WeeklyLoss:        0, // weekly tracking is not wired up yet
			ConsecutiveLosses: consecutiveLosses,
		}, snap)

		entry := s.Log.WithFields(logrus.Fields{
			"candidate": intent.CandidateRef,
			"symbol":    decision.Symbol,
			"decision":  decision.Decision,
			"qty":       decision.Qty,
			"reason":    decision.Reason,
		})
		if !decision.IsApproved() {
			entry.Info("candidate rejected")
			continue
		}
		entry.Info("candidate approved")

		trade, err := paper.Fill(s.Journal, decision.Intent, decision.Qty, c, led, s.Rand, s.Now().UTC())
		if err != nil {
			return nil, fmt.Errorf("paper fill %s: %w", intent.CandidateRef, err)
		}

		executed++
		equity += trade.PnL
		dailyPnL += trade.PnL
		if trade.PnL >= 0 {
			consecutiveLosses = 0
		} else {
			consecutiveLosses++
		}
		totalR += metrics.RMultiple(trade.PnL, decision.Risk.RiskBudget)
		led.RollSettlements(s.Now().UTC())

		s.Log.WithFields(logrus.Fields{
			"trade_id":     trade.ID,
			"symbol":       trade.Symbol,
			"pnl":          trade.PnL,
			"settled_cash": led.SettledCash(),
		}).Info("trade closed")
	}

	avgR := 0.0
	if executed > 0 {
		avgR = totalR / float64(executed)
	}
	summary := metrics.DailySummary(today, dailyPnL, executed, avgR)
	if err := s.Journal.InsertMetric(summary); err != nil {
		return nil, fmt.Errorf("insert daily metric: %w", err)
	}

	s.Log.WithFields(logrus.Fields{
		"pnl":        summary.PnL,
		"trades":     summary.Trades,
		"r_multiple": summary.RMultiple,
	}).Info("daily summary")
	return &summary, nil
}

// collectCandidates runs every strategy agent the plan names and keys
// the candidates by ref. Returns a nil map after journaling when a
// strategy fails its data-quality gate.
func (s *Session) collectCandidates(ctx context.Context, plan agent.Plan) (map[string]order.Candidate, error) {
	candidates := make(map[string]order.Candidate)
	for _, call := range plan.AgentCalls {
		if !strings.HasPrefix(call.Agent, "strategy_") {
			continue
		}
		strategyID := strings.TrimPrefix(call.Agent, "strategy_")
		sig, err := s.Agents.StrategySignal(ctx, strategyID)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", strategyID, err)
		}
		if !sig.DataQuality.OK {
			return nil, s.halt(fmt.Sprintf("data quality failed for strategy %s: %s",
				strategyID, strings.Join(sig.DataQuality.Issues, "; ")))
		}
		for _, c := range sig.Candidates {
			c.StrategyID = sig.StrategyID
			c.Ref = fmt.Sprintf("%s:%s:%s", sig.StrategyID, c.Symbol, sig.AsOf)
			candidates[c.Ref] = c
		}
	}
	return candidates, nil
}

// halt journals the reason as an incident and stops the session without
// error: a halted day is an ordinary outcome, not a failure.
func (s *Session) halt(reason string) error {
	s.Log.WithField("reason", reason).Warn("halting session")
	if err := s.Journal.InsertIncident(journal.Incident{
		CreatedAt: s.Now().UTC(),
		Severity:  "WARN",
		Message:   reason,
	}); err != nil {
		return fmt.Errorf("record incident: %w", err)
	}
	return nil
}
