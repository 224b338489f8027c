package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "desk",
	Short: "A paper-only trading desk driven by deterministic agents",
	Long: `Desk runs a simulated trading day end to end.

It provides tools for:
  - Running a paper session: agent plan, risk approval, simulated fills
  - Deterministic risk gating with a full constraint trace per candidate
  - T+1 settled-cash accounting (weekday-only settlement)
  - A SQLite journal of trades, fills, incidents and daily metrics`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
