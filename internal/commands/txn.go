package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/ledger"
	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/model"
)

func newTxnCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txn",
		Short: "Record and manage transactions",
	}
	cmd.AddCommand(newTxnAddCommand(cfgPath))
	cmd.AddCommand(newTxnEditCommand(cfgPath))
	cmd.AddCommand(newTxnDeleteCommand(cfgPath, newStdioConfirmer()))
	cmd.AddCommand(newTxnListCommand(cfgPath))
	return cmd
}

// txnFlags are the shared add/edit inputs.
type txnFlags struct {
	dateStr   string
	typeStr   string
	amountStr string
	desc      string
}

func (f *txnFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dateStr, "date", "", "transaction date, YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&f.typeStr, "type", "", "debit (withdrawal) or credit (repayment) (required)")
	cmd.Flags().StringVar(&f.amountStr, "amount", "", "positive amount (required)")
	cmd.Flags().StringVar(&f.desc, "desc", "", "free-text description")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")
}

// parseTxnFlags validates transaction input at the presentation boundary.
func parseTxnFlags(f txnFlags, today time.Time) (model.TransactionData, error) {
	var data model.TransactionData

	typ := model.TransactionType(strings.ToLower(strings.TrimSpace(f.typeStr)))
	if !typ.Valid() {
		return data, fmt.Errorf("invalid --type %q: must be debit or credit", f.typeStr)
	}

	amount, err := decimal.NewFromString(f.amountStr)
	if err != nil {
		return data, fmt.Errorf("invalid --amount %q: %w", f.amountStr, err)
	}
	if !amount.IsPositive() {
		return data, errors.New("--amount must be positive")
	}

	day := today
	if f.dateStr != "" {
		day, err = time.Parse(dateFormat, f.dateStr)
		if err != nil {
			return data, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", f.dateStr, err)
		}
	}

	return model.TransactionData{
		Date:        day,
		Type:        typ,
		Amount:      amount,
		Description: strings.TrimSpace(f.desc),
	}, nil
}

func newTxnAddCommand(cfgPath *string) *cobra.Command {
	var flags txnFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a withdrawal or repayment",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseTxnFlags(flags, time.Now())
			if err != nil {
				return err
			}

			svc, cfg, err := openLedger(*cfgPath)
			if err != nil {
				return err
			}
			txn, err := svc.AddTransaction(data)
			if err != nil {
				return err
			}

			slog.Debug("transaction added", "id", txn.ID, "type", txn.Type, "amount", txn.Amount)
			success("%s of %s recorded on %s (%s)",
				txn.Type, formatMoney(cfg.Display.CurrencySymbol, txn.Amount),
				txn.Date.Format(dateFormat), txn.ID)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newTxnEditCommand(cfgPath *string) *cobra.Command {
	var flags txnFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a transaction's fields (the id is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseTxnFlags(flags, time.Now())
			if err != nil {
				return err
			}

			svc, _, err := openLedger(*cfgPath)
			if err != nil {
				return err
			}
			return runTxnEdit(svc, args[0], data)
		},
	}

	flags.register(cmd)
	return cmd
}

func runTxnEdit(svc *ledger.Service, txnID string, data model.TransactionData) error {
	// The store treats unknown ids as a no-op, so check first to give the
	// user a straight answer.
	_, ok, err := svc.FindTransaction(txnID)
	if err != nil {
		return err
	}
	if !ok {
		warn("no transaction %s", txnID)
		return nil
	}

	if err := svc.EditTransaction(txnID, data); err != nil {
		return err
	}
	slog.Debug("transaction edited", "id", txnID)
	success("transaction %s updated", txnID)
	return nil
}

func newTxnDeleteCommand(cfgPath *string, confirm Confirmer) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := openLedger(*cfgPath)
			if err != nil {
				return err
			}
			return runTxnDelete(svc, args[0], yes, confirm, cfg.Display.CurrencySymbol)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "delete without asking")
	return cmd
}

func runTxnDelete(svc *ledger.Service, txnID string, yes bool, confirm Confirmer, symbol string) error {
	txn, ok, err := svc.FindTransaction(txnID)
	if err != nil {
		return err
	}
	if !ok {
		warn("no transaction %s", txnID)
		return nil
	}

	if !yes {
		prompt := fmt.Sprintf("delete %s of %s on %s?",
			txn.Type, formatMoney(symbol, txn.Amount), txn.Date.Format(dateFormat))
		if !confirm.Confirm(prompt) {
			muted("kept %s", txnID)
			return nil
		}
	}

	if err := svc.DeleteTransaction(txnID); err != nil {
		return err
	}
	slog.Debug("transaction deleted", "id", txnID)
	success("transaction %s deleted", txnID)
	return nil
}

func newTxnListCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first, with running balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := openLedger(*cfgPath)
			if err != nil {
				return err
			}
			txns, err := svc.Transactions()
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				muted("no transactions yet; record one with \"odtrack txn add\"")
				return nil
			}

			sym := cfg.Display.CurrencySymbol
			fmt.Printf("%-12s %-7s %14s %16s  %-24s %s\n",
				"DATE", "TYPE", "AMOUNT", "BALANCE", "DESCRIPTION", "ID")
			for _, r := range ledger.Rows(txns) {
				fmt.Printf("%-12s %-7s %14s %16s  %-24s %s\n",
					r.Date.Format(dateFormat),
					r.Type,
					formatMoney(sym, r.Amount),
					formatMoney(sym, r.Balance),
					r.Description,
					r.ID)
			}
			return nil
		},
	}
}
