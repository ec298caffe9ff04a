package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/config"
)

func newInitCommand() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new tracker directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, backend)
		},
	}

	cmd.Flags().StringVar(&backend, "storage", config.BackendFile, "storage backend (file or sqlite)")

	return cmd
}

func runInit(dir, backend string) error {
	switch backend {
	case config.BackendFile, config.BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", backend)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default()
	cfg.Storage.Backend = backend
	if backend == config.BackendSQLite {
		cfg.Storage.Path = filepath.Join(dir, "odtrack.db")
	} else {
		cfg.Storage.Path = filepath.Join(dir, "odtrack.json")
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	success("initialized tracker in %s", dir)
	muted("next: odtrack account set --name <name> --limit <amount> --rate <percent> --start <YYYY-MM-DD>")
	return nil
}
