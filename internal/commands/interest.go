package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/interest"
	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/model"
)

func newInterestCommand(cfgPath *string) *cobra.Command {
	var asOfStr string
	var showHistory bool

	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Compute interest accrued on the overdraft",
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

			asOf, err := resolveAsOf(asOfStr, time.Now())
			if err != nil {
				return err
			}

			data := interest.Compute(acct, txns, asOf)
			printInterest(cfg.Display.CurrencySymbol, acct, data, asOf, showHistory)
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfStr, "as-of", "", "evaluate interest as of this date, YYYY-MM-DD (defaults to today)")
	cmd.Flags().BoolVar(&showHistory, "history", false, "print the day-by-day accrual history")

	return cmd
}

// resolveAsOf parses the --as-of flag, defaulting to today and clamping
// future dates back to today. Historical what-if views are allowed;
// projections are not.
func resolveAsOf(asOfStr string, today time.Time) (time.Time, error) {
	if asOfStr == "" {
		return today, nil
	}
	asOf, err := time.Parse(dateFormat, asOfStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q (want YYYY-MM-DD): %w", asOfStr, err)
	}
	if asOf.After(today) {
		return today, nil
	}
	return asOf, nil
}

func printInterest(symbol string, acct *model.Account, data model.InterestData, asOf time.Time, showHistory bool) {
	header("Interest on " + acct.Name)
	muted("  %s%% per annum, evaluated through %s", acct.InterestRate, asOf.Format(dateFormat))

	dailyPct := interest.DailyRate(acct).Mul(hundredPct)
	monthlyPct := interest.MonthlyRate(acct).Mul(hundredPct)
	field("Daily rate", dailyPct.StringFixed(4)+"%")
	field("Monthly rate", monthlyPct.StringFixed(2)+"%")
	field("Days calculated", fmt.Sprintf("%d", data.DaysSinceStart))
	field("Current daily interest", formatMoney(symbol, data.DailyInterest))
	field("Total interest due", formatMoney(symbol, data.TotalInterest))

	if !showHistory || len(data.History) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("%-12s %16s %14s %14s\n", "DATE", "PRINCIPAL", "DAILY", "CUMULATIVE")
	for _, e := range data.History {
		fmt.Printf("%-12s %16s %14s %14s\n",
			e.Date.Format(dateFormat),
			formatMoney(symbol, e.Principal),
			symbol+e.DailyInterest.StringFixed(4),
			symbol+e.CumulativeInterest.StringFixed(4))
	}
}
