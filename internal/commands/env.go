package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/shopspring/decimal"

	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/config"
	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/kvstore"
	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/ledger"
	"github.com/amruthaveeraraja/overdraft-interest-insight/internal/logging"
)

const dateFormat = "2006-01-02"

// hundredPct converts a decimal fraction to a percentage for display.
var hundredPct = decimal.NewFromInt(100)

// openLedger loads config (falling back to defaults when no config file
// exists), sets up logging, and returns a ledger service over the
// configured store.
func openLedger(cfgPath string) (*ledger.Service, *config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, nil, err
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, nil, err
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return ledger.NewService(store), cfg, nil
}

func openStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case "", config.BackendFile:
		return kvstore.NewFile(cfg.DataPath()), nil
	case config.BackendSQLite:
		return kvstore.NewSQLite(cfg.DataPath())
	case config.BackendMemory:
		return kvstore.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// formatMoney renders a signed decimal with the configured currency
// symbol, e.g. "₹-60500.00".
func formatMoney(symbol string, d decimal.Decimal) string {
	return symbol + d.StringFixed(2)
}
