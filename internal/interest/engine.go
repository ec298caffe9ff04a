// Package interest computes simple (non-compounding) daily interest on an
// overdraft account by replaying its transactions one calendar day at a
// time. The computation is a pure function of its inputs: it performs no
// I/O, holds no state, and returns identical results for identical inputs.
package interest

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/model"
)

const dayKey = "2006-01-02"

var (
	daysPerYear   = decimal.NewFromInt(365)
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// Compute replays the transaction list from the account's start date
// through asOf (inclusive) and returns the accrual history plus headline
// figures. With no account, no transactions, or a start date after asOf,
// it returns the zero result rather than failing.
//
// Interest accrues on the end-of-day balance, only while that balance is
// strictly negative, at InterestRate/365/100 per day. Leap years are not
// special-cased and nothing compounds.
func Compute(account *model.Account, txns []model.Transaction, asOf time.Time) model.InterestData {
	zero := model.InterestData{
		TotalInterest: decimal.Zero,
		DailyInterest: decimal.Zero,
	}
	if account == nil || len(txns) == 0 {
		return zero
	}

	start := dateOnly(account.StartDate)
	end := dateOnly(asOf)
	if start.After(end) {
		return zero
	}

	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	// Bucket by calendar day. Time-of-day never matters: two transactions
	// at 09:00 and 23:00 land in the same bucket.
	byDay := make(map[string][]model.Transaction, len(sorted))
	for _, t := range sorted {
		k := t.Date.Format(dayKey)
		byDay[k] = append(byDay[k], t)
	}

	dailyRate := DailyRate(account)
	principal := decimal.Zero
	total := decimal.Zero
	history := make([]model.InterestEntry, 0, int(end.Sub(start).Hours()/24)+1)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, t := range byDay[day.Format(dayKey)] {
			if t.Type == model.TypeDebit {
				principal = principal.Sub(t.Amount)
			} else {
				principal = principal.Add(t.Amount)
			}
		}

		daily := decimal.Zero
		if principal.IsNegative() {
			daily = principal.Abs().Mul(dailyRate)
			total = total.Add(daily)
		}

		history = append(history, model.InterestEntry{
			Date:               day,
			Principal:          principal,
			DailyInterest:      daily,
			CumulativeInterest: total,
		})
	}

	// Today's accrual, recomputed from the final balance. Equals the last
	// entry's DailyInterest by construction.
	current := decimal.Zero
	if principal.IsNegative() {
		current = principal.Abs().Mul(dailyRate)
	}

	return model.InterestData{
		TotalInterest:  total.Round(2),
		DailyInterest:  current.Round(2),
		DaysSinceStart: int(end.Sub(start).Hours() / 24),
		History:        history,
	}
}

// DailyRate returns the simple daily rate as a decimal fraction
// (InterestRate/365/100).
func DailyRate(account *model.Account) decimal.Decimal {
	if account == nil {
		return decimal.Zero
	}
	return account.InterestRate.Div(daysPerYear).Div(hundred)
}

// MonthlyRate returns the nominal monthly rate as a decimal fraction
// (InterestRate/12/100).
func MonthlyRate(account *model.Account) decimal.Decimal {
	if account == nil {
		return decimal.Zero
	}
	return account.InterestRate.Div(monthsPerYear).Div(hundred)
}

// Balance returns the signed ledger balance over all transactions, credits
// minus debits, ignoring dates. Negative means overdrawn.
func Balance(txns []model.Transaction) decimal.Decimal {
	bal := decimal.Zero
	for _, t := range txns {
		if t.Type == model.TypeCredit {
			bal = bal.Add(t.Amount)
		} else {
			bal = bal.Sub(t.Amount)
		}
	}
	return bal
}

// dateOnly truncates t to its calendar date, discarding time-of-day and
// normalizing to UTC so day arithmetic is exact.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
