// Package config loads and validates the desk configuration. Risk limits
// are required: a missing risk key fails the load outright rather than
// defaulting, since a zeroed limit would silently change what the desk
// is allowed to trade.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/shumcap/desk/risk"
)

// Config is the complete desk configuration.
type Config struct {
	Desk    DeskConfig    `yaml:"desk"`
	Risk    risk.Config   `yaml:"risk"`
	Journal JournalConfig `yaml:"journal"`
	Logging LoggingConfig `yaml:"logging"`
}

// DeskConfig covers the session itself.
type DeskConfig struct {
	Mode       string   `yaml:"mode"`
	Universe   []string `yaml:"universe"`
	BaseEquity float64  `yaml:"base_equity"`
}

// JournalConfig locates the SQLite journal.
type JournalConfig struct {
	DBPath string `yaml:"db_path"`
}

// LoggingConfig controls the session log.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // text or json
	Output     string `yaml:"output"` // stdout or a file path
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// requiredRiskKeys must all be present in the config file. Mode is the
// one risk field with a default (PAPER).
var requiredRiskKeys = []string{
	"risk.risk_pct_per_trade",
	"risk.max_daily_loss_pct",
	"risk.max_weekly_loss_pct",
	"risk.max_drawdown_pct",
	"risk.max_consecutive_losses",
	"risk.daily_profit_lock_pct",
	"risk.max_trades_per_day",
	"risk.min_rr",
	"risk.min_price",
	"risk.min_avg_volume",
	"risk.max_spread",
}

// Load reads a YAML config file and validates it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var missing []string
	for _, key := range requiredRiskKeys {
		if !v.IsSet(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("config %s: missing required risk keys: %s",
			path, strings.Join(missing, ", "))
	}

	cfg := &Config{
		Desk: DeskConfig{
			Mode:       v.GetString("desk.mode"),
			Universe:   v.GetStringSlice("desk.universe"),
			BaseEquity: v.GetFloat64("desk.base_equity"),
		},
		Risk: risk.Config{
			Mode:                 v.GetString("risk.mode"),
			RiskPctPerTrade:      v.GetFloat64("risk.risk_pct_per_trade"),
			MaxDailyLossPct:      v.GetFloat64("risk.max_daily_loss_pct"),
			MaxWeeklyLossPct:     v.GetFloat64("risk.max_weekly_loss_pct"),
			MaxDrawdownPct:       v.GetFloat64("risk.max_drawdown_pct"),
			MaxConsecutiveLosses: v.GetInt("risk.max_consecutive_losses"),
			DailyProfitLockPct:   v.GetFloat64("risk.daily_profit_lock_pct"),
			MaxTradesPerDay:      v.GetInt("risk.max_trades_per_day"),
			MinRR:                v.GetFloat64("risk.min_rr"),
			MinPrice:             v.GetFloat64("risk.min_price"),
			MinAvgVolume:         v.GetFloat64("risk.min_avg_volume"),
			MaxSpread:            v.GetFloat64("risk.max_spread"),
		},
		Journal: JournalConfig{
			DBPath: v.GetString("journal.db_path"),
		},
		Logging: LoggingConfig{
			Level:      v.GetString("logging.level"),
			Format:     v.GetString("logging.format"),
			Output:     v.GetString("logging.output"),
			MaxSizeMB:  v.GetInt("logging.max_size_mb"),
			MaxBackups: v.GetInt("logging.max_backups"),
			MaxAgeDays: v.GetInt("logging.max_age_days"),
			Compress:   v.GetBool("logging.compress"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Desk.Mode == "" {
		cfg.Desk.Mode = "PAPER"
	}
	if cfg.Risk.Mode == "" {
		cfg.Risk.Mode = cfg.Desk.Mode
	}
	if cfg.Desk.BaseEquity == 0 {
		cfg.Desk.BaseEquity = 100_000
	}
	if cfg.Journal.DBPath == "" {
		cfg.Journal.DBPath = "./desk.db"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks ranges; key presence is already enforced by Load.
func (c *Config) Validate() error {
	if c.Desk.Mode != "PAPER" {
		return fmt.Errorf("desk.mode must be PAPER (got %q); live trading is not supported", c.Desk.Mode)
	}
	if len(c.Desk.Universe) == 0 {
		return fmt.Errorf("desk.universe must list at least one symbol")
	}
	if c.Desk.BaseEquity <= 0 {
		return fmt.Errorf("desk.base_equity must be positive")
	}
	r := c.Risk
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"risk.risk_pct_per_trade", r.RiskPctPerTrade},
		{"risk.max_daily_loss_pct", r.MaxDailyLossPct},
		{"risk.max_weekly_loss_pct", r.MaxWeeklyLossPct},
		{"risk.max_drawdown_pct", r.MaxDrawdownPct},
		{"risk.daily_profit_lock_pct", r.DailyProfitLockPct},
		{"risk.min_rr", r.MinRR},
		{"risk.min_price", r.MinPrice},
		{"risk.min_avg_volume", r.MinAvgVolume},
		{"risk.max_spread", r.MaxSpread},
	} {
		if f.val < 0 {
			return fmt.Errorf("%s must be non-negative", f.name)
		}
	}
	if r.MaxConsecutiveLosses < 0 {
		return fmt.Errorf("risk.max_consecutive_losses must be non-negative")
	}
	if r.MaxTradesPerDay < 0 {
		return fmt.Errorf("risk.max_trades_per_day must be non-negative")
	}
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	return nil
}

// Default returns the starter configuration written by `desk config init`.
func Default() *Config {
	return &Config{
		Desk: DeskConfig{
			Mode:       "PAPER",
			Universe:   []string{"SPY", "QQQ"},
			BaseEquity: 100_000,
		},
		Risk: risk.Config{
			Mode:                 "PAPER",
			RiskPctPerTrade:      0.0025,
			MaxDailyLossPct:      0.01,
			MaxWeeklyLossPct:     0.03,
			MaxDrawdownPct:       0.10,
			MaxConsecutiveLosses: 3,
			DailyProfitLockPct:   0.02,
			MaxTradesPerDay:      3,
			MinRR:                3.0,
			MinPrice:             10,
			MinAvgVolume:         5_000_000,
			MaxSpread:            0.03,
		},
		Journal: JournalConfig{DBPath: "./desk.db"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}
