package interest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testAccount(rate string) *model.Account {
	return &model.Account{
		Name:         "Business OD",
		ODLimit:      dec("500000"),
		InterestRate: dec(rate),
		StartDate:    date(2024, 1, 1),
		BankName:     "HDFC",
	}
}

func debit(day time.Time, amount string) model.Transaction {
	return model.Transaction{
		ID: "tx_d_" + day.Format("20060102"), Date: day,
		Type: model.TypeDebit, Amount: dec(amount),
	}
}

func credit(day time.Time, amount string) model.Transaction {
	return model.Transaction{
		ID: "tx_c_" + day.Format("20060102"), Date: day,
		Type: model.TypeCredit, Amount: dec(amount),
	}
}

func TestCompute_NoAccount(t *testing.T) {
	data := Compute(nil, []model.Transaction{debit(date(2024, 1, 1), "100")}, date(2024, 1, 10))

	assert.True(t, data.TotalInterest.IsZero())
	assert.True(t, data.DailyInterest.IsZero())
	assert.Zero(t, data.DaysSinceStart)
	assert.Empty(t, data.History)
}

func TestCompute_NoTransactions(t *testing.T) {
	data := Compute(testAccount("12"), nil, date(2024, 1, 10))

	assert.True(t, data.TotalInterest.IsZero())
	assert.Empty(t, data.History)
}

func TestCompute_StartDateInFuture(t *testing.T) {
	acct := testAccount("12")
	acct.StartDate = date(2024, 6, 1)

	data := Compute(acct, []model.Transaction{debit(date(2024, 6, 1), "1000")}, date(2024, 1, 10))

	assert.True(t, data.TotalInterest.IsZero())
	assert.Zero(t, data.DaysSinceStart)
	assert.Empty(t, data.History)
}

func TestCompute_SingleDebit(t *testing.T) {
	// 100000 drawn on day one at 12% p.a.: 100000 * 12/365/100 per day.
	acct := testAccount("12")
	txns := []model.Transaction{debit(date(2024, 1, 1), "100000")}

	data := Compute(acct, txns, date(2024, 1, 10))

	require.Len(t, data.History, 10)
	assert.Equal(t, 9, data.DaysSinceStart)

	first := data.History[0]
	assert.True(t, first.Principal.Equal(dec("-100000")), "got %s", first.Principal)
	perDay := dec("100000").Mul(dec("12").Div(dec("365")).Div(dec("100")))
	assert.True(t, first.DailyInterest.Equal(perDay), "got %s want %s", first.DailyInterest, perDay)

	// Linear accumulation: ten days at the same balance.
	last := data.History[9]
	assert.True(t, last.CumulativeInterest.Equal(perDay.Mul(dec("10"))))
	assert.True(t, data.TotalInterest.Equal(perDay.Mul(dec("10")).Round(2)))
	assert.Equal(t, "328.77", data.TotalInterest.StringFixed(2))
	assert.Equal(t, "32.88", data.DailyInterest.StringFixed(2))
}

func TestCompute_RepaymentStopsAccrual(t *testing.T) {
	acct := testAccount("12")
	txns := []model.Transaction{
		debit(date(2024, 1, 1), "100000"),
		credit(date(2024, 1, 5), "100000"),
	}

	data := Compute(acct, txns, date(2024, 1, 20))

	require.Len(t, data.History, 20)
	// Day 5 (index 4) is back to zero and accrues nothing.
	assert.True(t, data.History[4].Principal.IsZero())
	assert.True(t, data.History[4].DailyInterest.IsZero())

	// totalInterest stops growing after the repayment.
	atRepayment := data.History[4].CumulativeInterest
	for _, e := range data.History[4:] {
		assert.True(t, e.DailyInterest.IsZero())
		assert.True(t, e.CumulativeInterest.Equal(atRepayment))
	}
	assert.True(t, data.DailyInterest.IsZero())
}

func TestCompute_ZeroRate(t *testing.T) {
	acct := testAccount("0")
	txns := []model.Transaction{
		debit(date(2024, 1, 1), "250000"),
		debit(date(2024, 2, 1), "100000"),
	}

	data := Compute(acct, txns, date(2024, 3, 1))

	assert.True(t, data.TotalInterest.IsZero())
	for _, e := range data.History {
		assert.True(t, e.DailyInterest.IsZero())
	}
}

func TestCompute_PositiveBalanceAccruesNothing(t *testing.T) {
	acct := testAccount("12")
	txns := []model.Transaction{
		credit(date(2024, 1, 1), "50000"),
		debit(date(2024, 1, 3), "20000"),
	}

	data := Compute(acct, txns, date(2024, 1, 10))

	assert.True(t, data.TotalInterest.IsZero())
	for _, e := range data.History {
		assert.False(t, e.Principal.IsNegative())
		assert.True(t, e.DailyInterest.IsZero())
	}
}

func TestCompute_ExactlyZeroPrincipal(t *testing.T) {
	// Debit and matching credit on the same day: end-of-day balance is
	// exactly zero, which accrues nothing.
	acct := testAccount("12")
	txns := []model.Transaction{
		debit(date(2024, 1, 1), "75000"),
		credit(date(2024, 1, 1), "75000"),
	}

	data := Compute(acct, txns, date(2024, 1, 5))

	assert.True(t, data.TotalInterest.IsZero())
	assert.True(t, data.History[0].Principal.IsZero())
}

func TestCompute_SameDayNetting(t *testing.T) {
	// Interest is charged once per day on the end-of-day balance, so only
	// the day's net matters.
	acct := testAccount("12")
	netted := []model.Transaction{
		debit(date(2024, 1, 1), "80000"),
		credit(date(2024, 1, 1), "30000"),
	}
	single := []model.Transaction{debit(date(2024, 1, 1), "50000")}

	asOf := date(2024, 1, 15)
	a := Compute(acct, netted, asOf)
	b := Compute(acct, single, asOf)

	assert.True(t, a.TotalInterest.Equal(b.TotalInterest))
	require.Equal(t, len(a.History), len(b.History))
	for i := range a.History {
		assert.True(t, a.History[i].Principal.Equal(b.History[i].Principal))
	}
}

func TestCompute_TimeOfDayIgnored(t *testing.T) {
	acct := testAccount("12")
	late := time.Date(2024, 1, 3, 23, 45, 0, 0, time.UTC)
	txns := []model.Transaction{debit(late, "10000")}

	data := Compute(acct, txns, time.Date(2024, 1, 3, 0, 1, 0, 0, time.UTC))

	require.Len(t, data.History, 3)
	assert.True(t, data.History[2].Principal.Equal(dec("-10000")))
	assert.False(t, data.History[2].DailyInterest.IsZero())
}

func TestCompute_UnsortedInput(t *testing.T) {
	acct := testAccount("12")
	txns := []model.Transaction{
		credit(date(2024, 1, 5), "100000"),
		debit(date(2024, 1, 1), "100000"),
	}

	data := Compute(acct, txns, date(2024, 1, 10))

	assert.True(t, data.History[0].Principal.Equal(dec("-100000")))
	assert.True(t, data.History[4].Principal.IsZero())
}

func TestCompute_CumulativeInterestMonotonic(t *testing.T) {
	acct := testAccount("15.5")
	txns := []model.Transaction{
		debit(date(2024, 1, 2), "120000"),
		credit(date(2024, 1, 20), "40000"),
		debit(date(2024, 2, 10), "5000"),
		credit(date(2024, 3, 1), "90000"),
	}

	data := Compute(acct, txns, date(2024, 4, 1))

	prev := decimal.Zero
	for _, e := range data.History {
		assert.True(t, e.DailyInterest.GreaterThanOrEqual(decimal.Zero))
		assert.True(t, e.CumulativeInterest.GreaterThanOrEqual(prev))
		prev = e.CumulativeInterest
	}
}

func TestCompute_Deterministic(t *testing.T) {
	acct := testAccount("13.25")
	txns := []model.Transaction{
		debit(date(2024, 1, 1), "100000"),
		debit(date(2024, 1, 1), "2500"),
		credit(date(2024, 2, 14), "30000"),
	}
	asOf := date(2024, 5, 31)

	a := Compute(acct, txns, asOf)
	b := Compute(acct, txns, asOf)

	assert.Equal(t, a, b)
}

func TestCompute_DaysMatchHistoryLength(t *testing.T) {
	acct := testAccount("12")
	txns := []model.Transaction{debit(date(2024, 1, 1), "1000")}

	// Spans the Feb 29 leap day; the walk must not skip it.
	data := Compute(acct, txns, date(2024, 3, 5))

	assert.Equal(t, data.DaysSinceStart, len(data.History)-1)
	require.Len(t, data.History, 65)
	assert.Equal(t, date(2024, 2, 29), data.History[59].Date)
}

func TestCompute_HeadlineMatchesLastEntry(t *testing.T) {
	acct := testAccount("18")
	txns := []model.Transaction{debit(date(2024, 1, 1), "33333")}

	data := Compute(acct, txns, date(2024, 1, 30))

	last := data.History[len(data.History)-1]
	assert.True(t, data.DailyInterest.Equal(last.DailyInterest.Round(2)))
	assert.True(t, data.TotalInterest.Equal(last.CumulativeInterest.Round(2)))
}

func TestRates(t *testing.T) {
	acct := testAccount("12")

	daily := DailyRate(acct)
	monthly := MonthlyRate(acct)

	assert.True(t, daily.Equal(dec("12").Div(dec("365")).Div(dec("100"))))
	assert.True(t, monthly.Equal(dec("0.01")))
	assert.True(t, DailyRate(nil).IsZero())
	assert.True(t, MonthlyRate(nil).IsZero())
}

func TestBalance(t *testing.T) {
	txns := []model.Transaction{
		debit(date(2024, 1, 1), "100000"),
		credit(date(2024, 1, 5), "40000"),
		debit(date(2024, 1, 9), "500"),
	}

	assert.True(t, Balance(txns).Equal(dec("-60500")))
	assert.True(t, Balance(nil).IsZero())
}
