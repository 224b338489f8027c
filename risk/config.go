package risk

// Config holds the deterministic risk limits for a session. All fields
// are fractions of equity except the two integer counts and the absolute
// price/volume floors. Loaded once per session and never mutated.
type Config struct {
	Mode string `yaml:"mode"` // PAPER

	// Per-trade sizing
	RiskPctPerTrade float64 `yaml:"risk_pct_per_trade"`

	// Circuit breakers
	MaxDailyLossPct      float64 `yaml:"max_daily_loss_pct"`
	MaxWeeklyLossPct     float64 `yaml:"max_weekly_loss_pct"`
	MaxDrawdownPct       float64 `yaml:"max_drawdown_pct"`
	MaxConsecutiveLosses int     `yaml:"max_consecutive_losses"`
	DailyProfitLockPct   float64 `yaml:"daily_profit_lock_pct"`

	// Session limits
	MaxTradesPerDay int `yaml:"max_trades_per_day"`

	// Trade constraints
	MinRR float64 `yaml:"min_rr"`

	// Liquidity floors
	MinPrice     float64 `yaml:"min_price"`
	MinAvgVolume float64 `yaml:"min_avg_volume"`
	MaxSpread    float64 `yaml:"max_spread"`
}

// State carries the session counters the orchestrator threads through
// each approval call. The engine only reads it; the orchestrator owns
// the updates between candidates.
type State struct {
	Equity            float64
	SettledCash       float64
	DailyLoss         float64
	WeeklyLoss        float64 // always 0 from the current orchestrator
	ConsecutiveLosses int
}
