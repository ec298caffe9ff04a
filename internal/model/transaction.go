package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies ledger movements.
type TransactionType string

const (
	// TypeDebit is a withdrawal; it drives the balance further into overdraft.
	TypeDebit TransactionType = "debit"
	// TypeCredit is a repayment; it reduces the outstanding overdraft.
	TypeCredit TransactionType = "credit"
)

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == TypeDebit || t == TypeCredit
}

// Transaction is a single dated ledger movement. The ID is assigned at
// creation and never changes; dates are day-granular for accrual purposes.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // always positive; Type carries the sign
	Description string          `json:"description,omitempty"`
}

// TransactionData holds the mutable fields of a Transaction (everything
// except the ID). Used for both creation and in-place edits.
type TransactionData struct {
	Date        time.Time
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
}
