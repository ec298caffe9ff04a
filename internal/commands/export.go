package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export the transaction ledger as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openLedger(*cfgPath)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return svc.ExportCSV(os.Stdout)
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}
			defer f.Close()

			if err := svc.ExportCSV(f); err != nil {
				return err
			}
			success("ledger exported to %s", args[0])
			return nil
		},
	}
}
