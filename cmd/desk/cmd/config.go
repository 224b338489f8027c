package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shumcap/desk/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage desk configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a starter config file with default risk limits",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigInit,
}

var configInitForce bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := config.Default().WriteFile(path); err != nil {
		return err
	}
	fmt.Printf("Wrote starter config to %s\n", path)
	return nil
}
