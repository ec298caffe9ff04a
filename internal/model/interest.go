package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestEntry is one day of the accrual history. Derived on demand,
// never persisted.
type InterestEntry struct {
	Date               time.Time
	Principal          decimal.Decimal // signed end-of-day balance; negative = overdrawn
	DailyInterest      decimal.Decimal
	CumulativeInterest decimal.Decimal
}

// InterestData is the result of an interest computation over an account
// and its transactions. TotalInterest and DailyInterest are rounded to
// two decimal places for display; History entries keep full precision.
type InterestData struct {
	TotalInterest  decimal.Decimal
	DailyInterest  decimal.Decimal // accrual on the final day's balance
	DaysSinceStart int
	History        []InterestEntry
}
