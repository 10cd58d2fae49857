package tradestats

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Export is the result of importing a brokerage export file.
// Exactly one of Trades and Transactions is set.
type Export struct {
	Name         string
	Trades       *TradeFile
	Transactions *TransactionFile
}

// Len returns the number of imported records.
func (e *Export) Len() int {
	switch {
	case e == nil:
		return 0
	case e.Trades != nil:
		return len(e.Trades.Trades)
	case e.Transactions != nil:
		return len(e.Transactions.Transactions)
	}
	return 0
}

// Skipped returns the rows dropped during import.
func (e *Export) Skipped() []Skip {
	switch {
	case e == nil:
		return nil
	case e.Trades != nil:
		return e.Trades.Skipped
	case e.Transactions != nil:
		return e.Transactions.Skipped
	}
	return nil
}

// Import reads the export named name from r. Files ending in ".csv" are read
// as realized gains exports, files ending in ".json" as brokerage transactions
// exports. Other names fail with [ErrUnsupportedFormat].
//
// As for the underlying parsers, an export without usable rows is returned
// along with an error wrapping [ErrEmptyResult].
func Import(name string, r io.Reader) (*Export, error) {
	export := &Export{Name: name}
	var err error
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		export.Trades, err = ParseTradesCSV(r)
		if export.Trades == nil {
			return nil, fmt.Errorf("importing %q: %w", name, err)
		}
	case ".json":
		export.Transactions, err = ParseTransactionsJSON(r)
		if export.Transactions == nil {
			return nil, fmt.Errorf("importing %q: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("importing %q: extension %q: %w", name, ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return export, fmt.Errorf("importing %q: %w", name, err)
	}
	return export, nil
}
