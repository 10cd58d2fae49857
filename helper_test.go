package tradestats

import (
	"strings"
	"testing"
)

// qty returns a pointer to the quantity v, for transaction literals.
func qty(v float64) *Quantity {
	q := Q(v)
	return &q
}

// price returns a pointer to the amount v, for transaction literals.
func price(v float64) *Money {
	m := M(v)
	return &m
}

// tx is a helper for tests to create a transaction.
func tx(date, action, symbol string, quantity float64, amount float64) Transaction {
	return Transaction{
		ID:       "txn-" + date + "-" + symbol,
		Date:     MustParse(date),
		Action:   action,
		Symbol:   symbol,
		Quantity: qty(quantity),
		Amount:   M(amount),
	}
}

// trade is a helper for tests to create a realized trade.
func trade(symbol, opened, closed string, gain float64) TradeRecord {
	o, c := MustParse(opened), MustParse(closed)
	return TradeRecord{
		Symbol:      symbol,
		Opened:      o,
		Closed:      c,
		GainLoss:    M(gain),
		DaysInTrade: max(0, o.DaysUntil(c)),
	}
}

// sampleTrades covers several months and weeks, wins, losses and a break even trade.
func sampleTrades() []TradeRecord {
	return []TradeRecord{
		trade("AAPL", "2024-01-02", "2024-01-15", 120.50),
		trade("MSFT", "2024-01-03", "2024-01-17", -40.25),
		trade("AAPL", "2024-01-20", "2024-01-31", 0),
		trade("TSLA", "2023-12-01", "2024-02-01", -310.10),
		trade("NVDA", "2024-02-05", "2024-02-15", 990.99),
		trade("MSFT", "2024-02-10", "2024-04-02", 15.01),
		trade("AAPL", "2023-01-10", "2024-04-07", 0.33),
	}
}

// sampleTransactions is a small brokerage history with trades, options, income and expenses.
func sampleTransactions() []Transaction {
	dividend := Transaction{ID: "div", Date: MustParse("2024-03-15"), Action: "Qualified Dividend", Symbol: "AAPL", Amount: M(12.5)}
	interest := Transaction{ID: "int", Date: MustParse("2024-03-29"), Action: "Credit Interest", Amount: M(0.42)}
	margin := Transaction{ID: "margin", Date: MustParse("2024-03-29"), Action: "Margin Interest", Amount: M(-3.10)}
	buy := tx("2024-03-01", "Buy", "AAPL", 100, -1000)
	buy.Price = price(10)
	buy.Fees = M(1)
	return []Transaction{
		buy,
		tx("2024-03-04", "Buy", "AAPL", 40, -480),
		tx("2024-03-11", "Sell", "AAPL", 60, 720),
		tx("2024-03-11", "Sell Short", "TSLA", 10, 2000),
		tx("2024-03-12", "Buy to Open", "SPY 04/19/2024 500.00 C", 2, -800),
		tx("2024-03-15", "Sell to Close", "SPY 04/19/2024 500.00 C", 2, 1100),
		dividend,
		interest,
		margin,
		tx("2024-03-29", "Journal", "", 0, 250),
	}
}

// csvExport builds a realized gains export from data rows.
func csvExport(rows ...string) string {
	var b strings.Builder
	b.WriteString("\"Realized Gain/Loss for ...XXX123 as of 02/20/2024\"\n")
	b.WriteString(csvHeader + "\n")
	for _, r := range rows {
		b.WriteString(r + "\n")
	}
	return b.String()
}

const csvHeader = `Symbol,Name,Closed Date,Opened Date,Quantity,Proceeds Per Share,Cost Per Share,Proceeds,Cost Basis (CB),Gain/Loss ($),Gain/Loss (%),Long Term (LT) Gain/Loss,Short Term (ST) Gain/Loss,Term,Unadjusted Cost Basis,Wash Sale?,Disallowed Loss,Transaction Closed Date,Transaction Cost Basis,Total Transaction Gain/Loss ($),Total Transaction Gain/Loss (%),LT Transaction Gain/Loss ($),LT Transaction Gain/Loss (%),ST Transaction Gain/Loss ($),ST Transaction Gain/Loss (%)`

// assertMoney fails when got is not want.
func assertMoney(t *testing.T, name string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
