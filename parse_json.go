package tradestats

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// transactionsPath locates the mandatory transactions array of a brokerage transactions export.
const transactionsPath = "$.BrokerageTransactions"

// ParseTransactionsJSON parses a brokerage transactions export.
//
// The document must be an object with a BrokerageTransactions array, otherwise
// the error wraps [ErrInvalidFileStructure] and nothing is returned. Elements
// that are not objects, or whose date cannot be read, are skipped and reported
// in [TransactionFile.Skipped] with their 1-based position in the array.
//
// If no transaction can be read the returned error wraps [ErrEmptyResult], and the
// partially filled file is still returned.
func ParseTransactionsJSON(r io.Reader) (*TransactionFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read transactions export: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: not a JSON document: %w", ErrInvalidFileStructure, err)
	}
	jval, err := jsonpath.Get(transactionsPath, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: missing %s: %w", ErrInvalidFileStructure, transactionsPath, err)
	}
	items, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an array", ErrInvalidFileStructure, transactionsPath)
	}

	file := &TransactionFile{
		From:        headerString(doc, "$.FromDate"),
		To:          headerString(doc, "$.ToDate"),
		TotalAmount: ParseAmount(headerString(doc, "$.TotalTransactionsAmount")),
		TotalFees:   ParseAmount(headerString(doc, "$.TotalFeesAndCommAmount")),
	}
	for i, item := range items {
		tx, err := decodeTransaction(i, item)
		if err != nil {
			slog.Warn("skipping brokerage transaction", "row", i+1, "error", err)
			file.Skipped = append(file.Skipped, Skip{Row: i + 1, Err: err})
			continue
		}
		file.Transactions = append(file.Transactions, tx)
	}

	if len(file.Transactions) == 0 {
		return file, fmt.Errorf("transactions export (%d rows skipped): %w", len(file.Skipped), ErrEmptyResult)
	}
	return file, nil
}

// headerString returns the string at path, or "" if there is none.
func headerString(doc any, path string) string {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return ""
	}
	s, _ := scalarString(jval)
	return s
}

// scalarString returns the string form of a JSON scalar. Exports are expected
// to hold strings only, numbers are tolerated.
func scalarString(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// decodeTransaction converts the i-th element of the transactions array.
func decodeTransaction(i int, item any) (Transaction, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Transaction{}, &MalformedRowError{Row: i + 1, Reason: fmt.Sprintf("not an object: %T", item)}
	}
	field := func(name string) (string, error) {
		s, ok := scalarString(obj[name])
		if !ok {
			return "", &MalformedRowError{Row: i + 1, Field: name, Reason: fmt.Sprintf("not a string: %T", obj[name])}
		}
		return s, nil
	}

	var raw RawTransaction
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"Date", &raw.Date},
		{"Action", &raw.Action},
		{"Symbol", &raw.Symbol},
		{"Description", &raw.Description},
		{"Quantity", &raw.Quantity},
		{"Price", &raw.Price},
		{"Fees & Comm", &raw.Fees},
		{"Amount", &raw.Amount},
		{"AcctgRuleCd", &raw.AcctgRuleCd},
	} {
		v, err := field(f.name)
		if err != nil {
			return Transaction{}, err
		}
		*f.dst = v
	}
	return NormalizeTransaction(i, raw)
}

// NormalizeTransaction converts the raw transaction found at index in its export.
//
// The identifier is derived from the index, the raw date and the symbol, so it
// is stable across parses of the same export.
func NormalizeTransaction(index int, raw RawTransaction) (Transaction, error) {
	date, err := ParseDate(raw.Date)
	if err != nil {
		return Transaction{}, &MalformedRowError{Row: index + 1, Field: "Date", Reason: "cannot parse", Err: err}
	}
	symbol := strings.ToUpper(strings.TrimSpace(raw.Symbol))
	idSymbol := symbol
	if idSymbol == "" {
		idSymbol = "none"
	}
	return Transaction{
		ID:          fmt.Sprintf("txn-%d-%s-%s", index, raw.Date, idSymbol),
		Date:        date,
		Action:      strings.TrimSpace(raw.Action),
		Symbol:      symbol,
		Description: strings.TrimSpace(raw.Description),
		Quantity:    parseOptionalQuantity(raw.Quantity),
		Price:       parseOptionalAmount(raw.Price),
		Fees:        ParseAmount(raw.Fees),
		Amount:      ParseAmount(raw.Amount),
		AcctgRule:   strings.TrimSpace(raw.AcctgRuleCd),
	}, nil
}
