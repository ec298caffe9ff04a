package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/interest"
	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/model"
)

func newAccountCommand(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the tracked overdraft account",
	}
	cmd.AddCommand(newAccountSetCommand(cfgPath))
	cmd.AddCommand(newAccountShowCommand(cfgPath))
	return cmd
}

func newAccountSetCommand(cfgPath *string) *cobra.Command {
	var name, bank, limitStr, rateStr, startStr string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or replace the tracked account",
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := parseAccountFlags(name, bank, limitStr, rateStr, startStr)
			if err != nil {
				return err
			}

			svc, _, err := openLedger(*cfgPath)
			if err != nil {
				return err
			}
			if err := svc.SetAccount(*acct); err != nil {
				return err
			}

			slog.Info("account replaced", "name", acct.Name, "limit", acct.ODLimit, "rate", acct.InterestRate)
			success("account %q saved", acct.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account display name (required)")
	cmd.Flags().StringVar(&bank, "bank", "", "bank name")
	cmd.Flags().StringVar(&limitStr, "limit", "", "sanctioned overdraft limit (required)")
	cmd.Flags().StringVar(&rateStr, "rate", "", "annual interest rate in percent (required)")
	cmd.Flags().StringVar(&startStr, "start", "", "accrual start date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("limit")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// parseAccountFlags validates account input at the presentation boundary;
// the ledger service stores whatever it is given.
func parseAccountFlags(name, bank, limitStr, rateStr, startStr string) (*model.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("--name must not be empty")
	}

	limit, err := decimal.NewFromString(limitStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --limit %q: %w", limitStr, err)
	}
	if !limit.IsPositive() {
		return nil, errors.New("--limit must be positive")
	}

	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --rate %q: %w", rateStr, err)
	}
	if rate.IsNegative() {
		return nil, errors.New("--rate must not be negative")
	}

	start, err := time.Parse(dateFormat, startStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --start %q (want YYYY-MM-DD): %w", startStr, err)
	}

	return &model.Account{
		Name:         name,
		ODLimit:      limit,
		InterestRate: rate,
		StartDate:    start,
		BankName:     strings.TrimSpace(bank),
	}, nil
}

func newAccountShowCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the tracked account and current balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := openLedger(*cfgPath)
			if err != nil {
				return err
			}

			acct, err := svc.Account()
			if err != nil {
				return err
			}
			if acct == nil {
				return errors.New(`no account configured; run "odtrack account set" first`)
			}
			txns, err := svc.Transactions()
			if err != nil {
				return err
			}

			sym := cfg.Display.CurrencySymbol
			header(acct.Name)
			if acct.BankName != "" {
				field("Bank", acct.BankName)
			}
			field("OD limit", formatMoney(sym, acct.ODLimit))
			field("Interest rate", acct.InterestRate.String()+"% p.a.")
			field("Tracking since", acct.StartDate.Format(dateFormat))
			field("Current balance", formatMoney(sym, interest.Balance(txns)))
			field("Transactions", fmt.Sprintf("%d", len(txns)))
			return nil
		},
	}
}
