package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the single overdraft account being tracked. Exactly one
// account is active at a time; accrual begins at StartDate.
type Account struct {
	Name         string          `json:"name"`
	ODLimit      decimal.Decimal `json:"odLimit"`      // sanctioned ceiling, informational only
	InterestRate decimal.Decimal `json:"interestRate"` // annual percentage, e.g. 12.5 means 12.5%/year
	StartDate    time.Time       `json:"startDate"`
	BankName     string          `json:"bankName,omitempty"`
}
