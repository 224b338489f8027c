package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shumcap/desk/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the trade journal",
	Long: `Query and display journal records from the SQLite database.

Subcommands:
  trades   - List recent trades
  metrics  - List recent daily summaries

Examples:
  desk journal trades --db ./desk.db
  desk journal metrics --db ./desk.db`,
}

var journalTradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List recent trades, newest first",
	Args:  cobra.NoArgs,
	RunE:  runJournalTrades,
}

var journalMetricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List recent daily summaries",
	Args:  cobra.NoArgs,
	RunE:  runJournalMetrics,
}

var (
	journalDBPath string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalTradesCmd)
	journalCmd.AddCommand(journalMetricsCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./desk.db", "path to SQLite journal DB")
	journalCmd.PersistentFlags().IntVarP(&journalLimit, "limit", "n", 20, "maximum rows to show")
}

func runJournalTrades(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	trades, err := j.ListTrades(journalLimit)
	if err != nil {
		return err
	}
	if len(trades) == 0 {
		fmt.Println("No trades recorded.")
		return nil
	}

	fmt.Printf("%-28s %-6s %-4s %6s %10s %10s %10s %-8s\n",
		"TRADE", "SYMBOL", "SIDE", "QTY", "ENTRY", "EXIT", "PNL", "STATUS")
	for _, t := range trades {
		fmt.Printf("%-28s %-6s %-4s %6d %10.2f %10.2f %10.2f %-8s\n",
			t.ID, t.Symbol, t.Side, t.Qty, t.EntryPrice, t.ExitPrice, t.PnL, t.Status)
	}
	return nil
}

func runJournalMetrics(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	summaries, err := j.ListMetrics(journalLimit)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No daily metrics recorded.")
		return nil
	}

	fmt.Printf("%-12s %10s %8s %8s\n", "DATE", "PNL", "TRADES", "AVG R")
	for _, m := range summaries {
		fmt.Printf("%-12s %10.2f %8d %8.2f\n", m.Date, m.PnL, m.Trades, m.RMultiple)
	}
	return nil
}
