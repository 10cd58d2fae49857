package renderer

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/tradestats"
)

// TransactionSummaryMarkdown renders the statistics of a brokerage transactions export.
func TransactionSummaryMarkdown(file *tradestats.TransactionFile) string {
	var b strings.Builder
	s := tradestats.SummarizeTransactions(file.Transactions)

	fmt.Fprint(&b, "# Transactions Summary\n\n")
	if file.From != "" || file.To != "" {
		fmt.Fprintf(&b, "Exported from %s to %s.\n\n", file.From, file.To)
	}

	summary := newTable("lr", "Summary", "")
	summary.row("Transactions", fmt.Sprint(s.TotalTransactions))
	if !s.DateRange.From.IsZero() {
		summary.row("Dates", fmt.Sprintf("%s to %s", s.DateRange.From, s.DateRange.To))
	}
	summary.row("Unique Symbols", fmt.Sprint(s.UniqueSymbols))
	summary.row("Total Volume", s.TotalVolume.String())
	summary.row("Buy Volume", s.BuyVolume.String())
	summary.row("Sell Volume", s.SellVolume.String())
	summary.row("Fees & Commissions", s.TotalFees.String())
	summary.row("**Net Cash Flow**", "**"+s.NetCashFlow.SignedString()+"**")
	summary.print(&b)
	fmt.Fprintln(&b)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "## Actions\n\n")
		table := newTable("lr", "Action", "Count")
		for _, action := range slices.Sorted(maps.Keys(s.ActionBreakdown)) {
			table.row(action, fmt.Sprint(s.ActionBreakdown[action]))
		}
		table.print(w)
		fmt.Fprintln(w)
		return len(s.ActionBreakdown) > 0
	})

	b.WriteString(SkippedMarkdown(file.Skipped))
	return b.String()
}

// TransactionsMarkdown renders a list of transactions.
func TransactionsMarkdown(title string, txs []tradestats.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(txs) == 0 {
		fmt.Fprint(&b, "No transactions.\n")
		return b.String()
	}
	table := newTable("lllllrrrr", "Date", "Action", "Category", "Symbol", "Description", "Quantity", "Price", "Fees", "Amount")
	for _, tx := range txs {
		table.row(
			tx.Date.String(),
			tx.Action,
			tx.Category().String(),
			tx.Symbol,
			tx.Description,
			optional(tx.Quantity),
			optional(tx.Price),
			tx.Fees.String(),
			tx.Amount.SignedString(),
		)
	}
	table.print(&b)
	return b.String()
}

// SymbolsMarkdown renders the totals per symbol.
func SymbolsMarkdown(summaries []tradestats.SymbolSummary) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Symbols\n\n")
	table := newTable("lrrrrrrrr", "Symbol", "Count", "Bought", "Sold", "Buy Amount", "Sell Amount", "Net Amount", "Avg Buy", "Avg Sell")
	for _, s := range summaries {
		table.row(
			s.Symbol,
			fmt.Sprint(s.TransactionCount),
			s.BuyQuantity.String(),
			s.SellQuantity.String(),
			s.BuyAmount.String(),
			s.SellAmount.String(),
			s.NetAmount.SignedString(),
			optional(s.AvgBuyPrice),
			optional(s.AvgSellPrice),
		)
	}
	table.print(&b)
	return b.String()
}

// ActionsMarkdown renders the totals per category, then per action.
func ActionsMarkdown(categories []tradestats.CategorySummary, actions []tradestats.ActionSummary) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Actions\n\n")

	fmt.Fprint(&b, "## Categories\n\n")
	table := newTable("lrrr", "Category", "Count", "Amount", "Fees")
	for _, c := range categories {
		table.row(c.Category.String(), fmt.Sprint(c.TransactionCount), c.TotalAmount.SignedString(), c.TotalFees.String())
	}
	table.print(&b)
	fmt.Fprintln(&b)

	fmt.Fprint(&b, "## Actions\n\n")
	table = newTable("llrrr", "Action", "Category", "Count", "Amount", "Fees")
	for _, a := range actions {
		table.row(a.Action, a.Category.String(), fmt.Sprint(a.TransactionCount), a.TotalAmount.SignedString(), a.TotalFees.String())
	}
	table.print(&b)
	return b.String()
}

// DailyMarkdown renders the traded volume of each day.
func DailyMarkdown(volumes []tradestats.DailyVolume) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Daily Volume\n\n")
	table := newTable("lrrrr", "Date", "Buy Volume", "Sell Volume", "Net Volume", "Transactions")
	for _, v := range volumes {
		table.row(v.Date.String(), v.BuyVolume.String(), v.SellVolume.String(), v.NetVolume.SignedString(), fmt.Sprint(v.TransactionCount))
	}
	table.print(&b)
	return b.String()
}

// PositionsMarkdown renders the open positions.
func PositionsMarkdown(positions []tradestats.OpenPosition) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Open Positions\n\n")
	if len(positions) == 0 {
		fmt.Fprint(&b, "No open position.\n")
		return b.String()
	}
	table := newTable("lllrrrllr", "Symbol", "Description", "Side", "Quantity", "Avg Cost", "Total Cost", "First Trade", "Last Trade", "Trades")
	var total tradestats.Money
	for _, p := range positions {
		total = total.Add(p.TotalCost)
		table.row(
			p.Symbol,
			p.Description,
			p.Side.String(),
			p.Quantity.String(),
			p.AvgCost.String(),
			p.TotalCost.String(),
			p.FirstTrade.String(),
			p.LastTrade.String(),
			fmt.Sprint(p.TradeCount),
		)
	}
	table.row("**Total**", "", "", "", "", "**"+total.String()+"**", "", "", "")
	table.print(&b)
	return b.String()
}
