// Package commands wires the odtrack CLI. The commands are the
// presentation layer: they collect and validate input, call into the
// ledger service, run the interest engine, and render results. The core
// packages never know a CLI exists.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/buildinfo"
	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:     "odtrack",
		Short:   "Track overdraft usage and the interest it accrues",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.FileName, "path to the odtrack config file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand(&cfgPath))
	rootCmd.AddCommand(newTxnCommand(&cfgPath))
	rootCmd.AddCommand(newInterestCommand(&cfgPath))
	rootCmd.AddCommand(newExportCommand(&cfgPath))

	return rootCmd
}
