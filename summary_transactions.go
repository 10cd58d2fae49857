package tradestats

import (
	"cmp"
	"maps"
	"slices"
)

// TransactionSummary are the statistics of a whole brokerage transactions export.
type TransactionSummary struct {
	TotalTransactions int            `json:"totalTransactions"`
	TotalVolume       Money          `json:"totalVolume"` // sum of absolute amounts
	BuyVolume         Money          `json:"totalBuyVolume"`
	SellVolume        Money          `json:"totalSellVolume"`
	TotalFees         Money          `json:"totalFees"`
	NetCashFlow       Money          `json:"netCashFlow"`
	UniqueSymbols     int            `json:"uniqueSymbols"`
	DateRange         Range          `json:"dateRange"` // zero for no transactions
	ActionBreakdown   map[string]int `json:"actionBreakdown"`
}

// SummarizeTransactions computes the statistics of txs.
func SummarizeTransactions(txs []Transaction) TransactionSummary {
	s := TransactionSummary{
		TotalTransactions: len(txs),
		ActionBreakdown:   make(map[string]int),
	}
	symbols := make(map[string]struct{})
	for i, tx := range txs {
		s.ActionBreakdown[tx.Action]++
		volume := tx.Amount.Abs()
		s.TotalVolume = s.TotalVolume.Add(volume)
		switch {
		case IsBuy(tx.Action):
			s.BuyVolume = s.BuyVolume.Add(volume)
		case IsSell(tx.Action):
			s.SellVolume = s.SellVolume.Add(volume)
		}
		s.TotalFees = s.TotalFees.Add(tx.Fees)
		s.NetCashFlow = s.NetCashFlow.Add(tx.Amount)
		if tx.Symbol != "" {
			symbols[tx.Symbol] = struct{}{}
		}
		if i == 0 || tx.Date.Before(s.DateRange.From) {
			s.DateRange.From = tx.Date
		}
		if i == 0 || tx.Date.After(s.DateRange.To) {
			s.DateRange.To = tx.Date
		}
	}
	s.UniqueSymbols = len(symbols)
	return s
}

// SymbolSummary are the totals of the transactions of one symbol.
type SymbolSummary struct {
	Symbol           string   `json:"symbol"` // "[action]" for transactions without symbol
	Description      string   `json:"description"`
	BuyQuantity      Quantity `json:"totalBuyQuantity"`
	SellQuantity     Quantity `json:"totalSellQuantity"`
	BuyAmount        Money    `json:"buyAmount"`  // cash out, absolute
	SellAmount       Money    `json:"sellAmount"` // cash in, absolute
	NetAmount        Money    `json:"netAmount"`  // sum of signed amounts
	TotalFees        Money    `json:"totalFees"`
	TransactionCount int      `json:"transactionCount"`
	AvgBuyPrice      *Money   `json:"avgBuyPrice"`  // nil without buys
	AvgSellPrice     *Money   `json:"avgSellPrice"` // nil without sells
}

// symbolKey groups transactions without symbol by action.
func symbolKey(tx Transaction) string {
	if tx.Symbol == "" {
		return "[" + tx.Action + "]"
	}
	return tx.Symbol
}

// sideTotals accumulates the traded quantity and cash of one side.
type sideTotals struct {
	quantity Quantity
	cash     Money
}

// averagePrice returns the amount weighted price, or nil without quantity.
func (s sideTotals) averagePrice() *Money {
	if s.quantity.IsZero() {
		return nil
	}
	avg := s.cash.Div(s.quantity)
	return &avg
}

// SymbolSummaries groups txs by symbol, or by "[action]" when the symbol is empty,
// and returns the totals of each group, most active first.
//
// Buys count as cash out and sells as cash in. Other actions count on the side
// of their amount's sign. The sum of NetAmount over all groups is the net cash
// flow of txs. The description is the one of the earliest transaction, ties
// broken on the text, so the result does not depend on the order of txs.
func SymbolSummaries(txs []Transaction) []SymbolSummary {
	type group struct {
		SymbolSummary
		buys, sells     sideTotals
		descriptionDate Date
	}
	groups := make(map[string]*group)
	for _, tx := range txs {
		key := symbolKey(tx)
		g, ok := groups[key]
		if !ok {
			g = &group{SymbolSummary: SymbolSummary{Symbol: key}}
			groups[key] = g
		}
		if g.TransactionCount == 0 || tx.Date.Before(g.descriptionDate) ||
			(tx.Date == g.descriptionDate && tx.Description < g.Description) {
			g.Description, g.descriptionDate = tx.Description, tx.Date
		}
		g.TransactionCount++
		g.TotalFees = g.TotalFees.Add(tx.Fees)
		g.NetAmount = g.NetAmount.Add(tx.Amount)
		q, cash := tx.quantity(), tx.Amount.Abs()
		switch {
		case IsBuy(tx.Action):
			g.BuyQuantity = g.BuyQuantity.Add(q)
			g.BuyAmount = g.BuyAmount.Add(cash)
			g.buys.quantity = g.buys.quantity.Add(q)
			g.buys.cash = g.buys.cash.Add(cash)
		case IsSell(tx.Action):
			g.SellQuantity = g.SellQuantity.Add(q)
			g.SellAmount = g.SellAmount.Add(cash)
			g.sells.quantity = g.sells.quantity.Add(q)
			g.sells.cash = g.sells.cash.Add(cash)
		case tx.Amount.IsPositive():
			g.SellAmount = g.SellAmount.Add(cash)
		default:
			g.BuyAmount = g.BuyAmount.Add(cash)
		}
	}

	summaries := make([]SymbolSummary, 0, len(groups))
	for _, g := range groups {
		g.AvgBuyPrice = g.buys.averagePrice()
		g.AvgSellPrice = g.sells.averagePrice()
		summaries = append(summaries, g.SymbolSummary)
	}
	slices.SortFunc(summaries, func(a, b SymbolSummary) int {
		if c := cmp.Compare(b.TransactionCount, a.TransactionCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	return summaries
}

// ActionSummary are the totals of the transactions of one action label.
type ActionSummary struct {
	Action           string         `json:"action"`
	Category         ActionCategory `json:"category"`
	TotalAmount      Money          `json:"totalAmount"`
	TransactionCount int            `json:"transactionCount"`
	TotalFees        Money          `json:"totalFees"`
}

// ActionSummaries groups txs by action label, most frequent first.
func ActionSummaries(txs []Transaction) []ActionSummary {
	groups := make(map[string]*ActionSummary)
	for _, tx := range txs {
		a, ok := groups[tx.Action]
		if !ok {
			a = &ActionSummary{Action: tx.Action, Category: tx.Category()}
			groups[tx.Action] = a
		}
		a.TotalAmount = a.TotalAmount.Add(tx.Amount)
		a.TransactionCount++
		a.TotalFees = a.TotalFees.Add(tx.Fees)
	}
	summaries := make([]ActionSummary, 0, len(groups))
	for _, a := range groups {
		summaries = append(summaries, *a)
	}
	slices.SortFunc(summaries, func(a, b ActionSummary) int {
		if c := cmp.Compare(b.TransactionCount, a.TransactionCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Action, b.Action)
	})
	return summaries
}

// CategorySummary are the totals of the transactions of one action category.
type CategorySummary struct {
	Category         ActionCategory `json:"category"`
	Actions          []string       `json:"actions"` // sorted labels
	TotalAmount      Money          `json:"totalAmount"`
	TransactionCount int            `json:"transactionCount"`
	TotalFees        Money          `json:"totalFees"`
}

// CategorySummaries rolls the action summaries of txs up into categories.
// Categories are in [Categories] order, those without transactions are left out.
func CategorySummaries(txs []Transaction) []CategorySummary {
	groups := make(map[ActionCategory]*CategorySummary)
	for _, a := range ActionSummaries(txs) {
		c, ok := groups[a.Category]
		if !ok {
			c = &CategorySummary{Category: a.Category}
			groups[a.Category] = c
		}
		c.Actions = append(c.Actions, a.Action)
		c.TotalAmount = c.TotalAmount.Add(a.TotalAmount)
		c.TransactionCount += a.TransactionCount
		c.TotalFees = c.TotalFees.Add(a.TotalFees)
	}
	var summaries []CategorySummary
	for _, category := range Categories {
		if c, ok := groups[category]; ok {
			slices.Sort(c.Actions)
			summaries = append(summaries, *c)
		}
	}
	return summaries
}

// DailyVolume is the traded volume of one calendar day.
type DailyVolume struct {
	Date             Date  `json:"date"`
	BuyVolume        Money `json:"buyVolume"`
	SellVolume       Money `json:"sellVolume"`
	NetVolume        Money `json:"netVolume"` // SellVolume - BuyVolume
	TransactionCount int   `json:"transactionCount"`
}

// DailyVolumes returns the buy and sell volume of every day with transactions, in date order.
// Every transaction is counted, whatever its action.
func DailyVolumes(txs []Transaction) []DailyVolume {
	days := make(map[Date]*DailyVolume)
	for _, tx := range txs {
		d, ok := days[tx.Date]
		if !ok {
			d = &DailyVolume{Date: tx.Date}
			days[tx.Date] = d
		}
		d.TransactionCount++
		switch {
		case IsBuy(tx.Action):
			d.BuyVolume = d.BuyVolume.Add(tx.Amount.Abs())
		case IsSell(tx.Action):
			d.SellVolume = d.SellVolume.Add(tx.Amount.Abs())
		}
		d.NetVolume = d.SellVolume.Sub(d.BuyVolume)
	}
	volumes := make([]DailyVolume, 0, len(days))
	for _, day := range slices.SortedFunc(maps.Keys(days), Date.Compare) {
		volumes = append(volumes, *days[day])
	}
	return volumes
}
