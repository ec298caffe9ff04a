// Package ledger owns the tracked account and its transaction list. Every
// mutation is written through the key-value store immediately; reads go
// back to the store, so the persisted snapshot is always the source of
// truth.
package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/id"
	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/kvstore"
	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/model"
)

// Storage keys. These match the original record names, so existing
// snapshots keep working.
const (
	accountKey      = "od-account"
	transactionsKey = "od-transactions"
)

// Service provides account and transaction mutation over a Store.
type Service struct {
	store kvstore.Store
	now   func() time.Time
}

// NewService creates a ledger Service over the given store.
func NewService(store kvstore.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Account returns the active account, or nil when none has been set up.
func (s *Service) Account() (*model.Account, error) {
	data, ok, err := s.store.Get(accountKey)
	if err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var a model.Account
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing account record: %w", err)
	}
	return &a, nil
}

// SetAccount replaces the active account wholesale. Validation happens at
// the input boundary; the service trusts its caller.
func (s *Service) SetAccount(a model.Account) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshaling account: %w", err)
	}
	if err := s.store.Set(accountKey, data); err != nil {
		return fmt.Errorf("saving account: %w", err)
	}
	return nil
}

// Transactions returns all recorded transactions in insertion order.
func (s *Service) Transactions() ([]model.Transaction, error) {
	data, ok, err := s.store.Get(transactionsKey)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var txns []model.Transaction
	if err := json.Unmarshal(data, &txns); err != nil {
		return nil, fmt.Errorf("parsing transaction record: %w", err)
	}
	return txns, nil
}

// AddTransaction appends a new transaction with a freshly generated id and
// persists the list. Returns the stored transaction.
func (s *Service) AddTransaction(data model.TransactionData) (model.Transaction, error) {
	txns, err := s.Transactions()
	if err != nil {
		return model.Transaction{}, err
	}

	txn := model.Transaction{
		ID:          id.NewTransactionID(s.now()),
		Date:        data.Date,
		Type:        data.Type,
		Amount:      data.Amount,
		Description: data.Description,
	}
	if err := s.saveTransactions(append(txns, txn)); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// EditTransaction replaces every field except the id of the matching
// transaction. An unknown id is a silent no-op.
func (s *Service) EditTransaction(txnID string, data model.TransactionData) error {
	txns, err := s.Transactions()
	if err != nil {
		return err
	}

	for i, t := range txns {
		if t.ID != txnID {
			continue
		}
		txns[i] = model.Transaction{
			ID:          txnID,
			Date:        data.Date,
			Type:        data.Type,
			Amount:      data.Amount,
			Description: data.Description,
		}
		return s.saveTransactions(txns)
	}
	return nil
}

// DeleteTransaction removes the matching transaction. An unknown id is a
// silent no-op. Deleted ids are never reused.
func (s *Service) DeleteTransaction(txnID string) error {
	txns, err := s.Transactions()
	if err != nil {
		return err
	}

	kept := txns[:0]
	for _, t := range txns {
		if t.ID != txnID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(txns) {
		return nil
	}
	return s.saveTransactions(kept)
}

// FindTransaction returns the transaction with the given id, if present.
func (s *Service) FindTransaction(txnID string) (model.Transaction, bool, error) {
	txns, err := s.Transactions()
	if err != nil {
		return model.Transaction{}, false, err
	}
	for _, t := range txns {
		if t.ID == txnID {
			return t, true, nil
		}
	}
	return model.Transaction{}, false, nil
}

func (s *Service) saveTransactions(txns []model.Transaction) error {
	data, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("marshaling transactions: %w", err)
	}
	if err := s.store.Set(transactionsKey, data); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}
	return nil
}
