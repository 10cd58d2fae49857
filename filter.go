package tradestats

import (
	"fmt"
	"slices"
	"strings"
)

// TradesInPeriod returns the trades closed within the period identified by key,
// as found in [PeriodStats.Key].
//
// The period is derived again from the key and every trade is tested against
// it, so the result does not depend on any previously computed statistics.
func TradesInPeriod(trades []TradeRecord, p Period, key string) ([]TradeRecord, error) {
	start, err := ParseDate(key)
	if err != nil {
		return nil, fmt.Errorf("invalid period key %q: %w", key, err)
	}
	r := p.Range(start)
	return filter(trades, func(t TradeRecord) bool {
		return !t.Closed.IsZero() && r.Contains(t.Closed)
	}), nil
}

// TradesBySymbol returns the trades of symbol, case is ignored.
func TradesBySymbol(trades []TradeRecord, symbol string) []TradeRecord {
	return filter(trades, func(t TradeRecord) bool { return strings.EqualFold(t.Symbol, symbol) })
}

// TransactionsBySymbol returns the transactions of symbol, case is ignored.
// The "[action]" keys of [SymbolSummaries] select the transactions without symbol of that action.
func TransactionsBySymbol(txs []Transaction, symbol string) []Transaction {
	return filter(txs, func(tx Transaction) bool { return strings.EqualFold(symbolKey(tx), symbol) })
}

// TransactionsByAction returns the transactions with the action label, case is ignored.
func TransactionsByAction(txs []Transaction, action string) []Transaction {
	action = strings.TrimSpace(action)
	return filter(txs, func(tx Transaction) bool { return strings.EqualFold(tx.Action, action) })
}

// TransactionsByCategory returns the transactions whose action is in category c.
func TransactionsByCategory(txs []Transaction, c ActionCategory) []Transaction {
	return filter(txs, func(tx Transaction) bool { return tx.Category() == c })
}

// TransactionsOn returns the transactions of day.
func TransactionsOn(txs []Transaction, day Date) []Transaction {
	return filter(txs, func(tx Transaction) bool { return tx.Date == day })
}

// TransactionsIn returns the transactions within r.
func TransactionsIn(txs []Transaction, r Range) []Transaction {
	return filter(txs, func(tx Transaction) bool { return r.Contains(tx.Date) })
}

// Symbols returns the sorted distinct symbols of txs.
func Symbols(txs []Transaction) []string {
	var symbols []string
	for _, tx := range txs {
		if tx.Symbol != "" {
			symbols = append(symbols, tx.Symbol)
		}
	}
	slices.Sort(symbols)
	return slices.Compact(symbols)
}

// Actions returns the sorted distinct action labels of txs.
func Actions(txs []Transaction) []string {
	actions := make([]string, 0, len(txs))
	for _, tx := range txs {
		actions = append(actions, tx.Action)
	}
	slices.Sort(actions)
	return slices.Compact(actions)
}

// filter returns a new slice with the elements of s matching keep.
func filter[S ~[]E, E any](s S, keep func(E) bool) S {
	var res S
	for _, e := range s {
		if keep(e) {
			res = append(res, e)
		}
	}
	return res
}
