package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/model"
)

// Header is the CSV header for ledger exports.
const Header = "id,date,type,amount,balance,description"

const dateFormat = "2006-01-02"

// Row is one ledger line: a transaction plus the running balance after it
// was applied (in date order).
type Row struct {
	model.Transaction
	Balance decimal.Decimal
}

// Rows returns the ledger newest-first with running balances computed
// oldest-first, mirroring how a bank statement reads.
func Rows(txns []model.Transaction) []Row {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	rows := make([]Row, len(sorted))
	bal := decimal.Zero
	for i, t := range sorted {
		if t.Type == model.TypeCredit {
			bal = bal.Add(t.Amount)
		} else {
			bal = bal.Sub(t.Amount)
		}
		// Fill back-to-front so the result reads newest-first.
		rows[len(rows)-1-i] = Row{Transaction: t, Balance: bal}
	}
	return rows
}

// WriteLedger writes rows as CSV, header included.
func WriteLedger(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range Rows(txns) {
		rec := []string{
			r.ID,
			r.Date.Format(dateFormat),
			string(r.Type),
			r.Amount.String(),
			r.Balance.String(),
			r.Description,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the current transaction ledger as CSV.
func (s *Service) ExportCSV(w io.Writer) error {
	txns, err := s.Transactions()
	if err != nil {
		return err
	}
	return WriteLedger(w, txns)
}
