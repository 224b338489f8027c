package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shumcap/desk/agent"
	"github.com/shumcap/desk/config"
	"github.com/shumcap/desk/desk"
	"github.com/shumcap/desk/journal"
	"github.com/shumcap/desk/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one paper trading session from a config file",
	Long: `Run a full simulated trading day using settings from a configuration file.

The config file sets the universe, risk limits, journal location and logging.

Example:
  desk run -f configs/desk.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML) (required)")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})

	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	session := desk.NewSession(cfg, log, j, agent.NewMock(cfg.Desk.Universe))

	summary, err := session.Run(context.Background())
	if err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	if summary == nil {
		fmt.Println("Session halted; see incidents in the journal.")
		return nil
	}

	fmt.Printf("Daily summary for %s\n", summary.Date)
	fmt.Printf("  Trades: %d\n", summary.Trades)
	fmt.Printf("  P&L: $%.2f\n", summary.PnL)
	fmt.Printf("  Avg R: %.2f\n", summary.RMultiple)
	fmt.Printf("\nJournal: %s\n", cfg.Journal.DBPath)
	return nil
}
