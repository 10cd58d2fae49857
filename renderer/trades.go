package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/tradestats"
)

// GainsMarkdown renders the summary of a realized gains export: overall
// statistics, the gain per term and the gain per ticker.
func GainsMarkdown(file *tradestats.TradeFile) string {
	var b strings.Builder
	s := tradestats.SummarizeTrades(file.Trades)

	fmt.Fprint(&b, "# Realized Gains\n\n")
	if file.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", file.Summary)
	}

	summary := newTable("lr", "Summary", "")
	summary.row("**Total Gain/Loss**", "**"+s.TotalGainLoss.SignedString()+"**")
	summary.row("Trades", fmt.Sprint(s.TotalTrades))
	summary.row("Winning / Losing", fmt.Sprintf("%d / %d", s.WinningTrades, s.LosingTrades))
	summary.row("Win Rate", s.WinRate.String())
	summary.row("Average Win", s.AverageWin.String())
	summary.row("Average Loss", s.AverageLoss.String())
	summary.row("Largest Win", s.LargestWin.SignedString())
	summary.row("Largest Loss", s.LargestLoss.SignedString())
	summary.row("Average Days in Trade", fmt.Sprintf("%.1f", s.AverageDaysInTrade))
	summary.print(&b)
	fmt.Fprintln(&b)

	ConditionalBlock(&b, func(w io.Writer) bool {
		terms := tradestats.TermDistribution(file.Trades)
		fmt.Fprint(w, "## Gains per Term\n\n")
		table := newTable("lrr", "Term", "Gain/Loss", "Trades")
		for _, t := range terms {
			table.row(t.Term.String(), t.GainLoss.SignedString(), fmt.Sprint(t.Count))
		}
		table.print(w)
		fmt.Fprintln(w)
		return len(terms) > 0
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		tickers := tradestats.TickerPerformance(file.Trades)
		fmt.Fprint(w, "## Gains per Ticker\n\n")
		table := newTable("lrr", "Ticker", "Gain/Loss", "Trades")
		for _, t := range tickers {
			table.row(t.Symbol, t.GainLoss.SignedString(), fmt.Sprint(t.TradeCount))
		}
		table.print(w)
		fmt.Fprintln(w)
		return len(tickers) > 0
	})

	b.WriteString(SkippedMarkdown(file.Skipped))
	return b.String()
}

// TradesMarkdown renders a list of realized trades, with a total row.
func TradesMarkdown(title string, trades []tradestats.TradeRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(trades) == 0 {
		fmt.Fprint(&b, "No trades.\n")
		return b.String()
	}
	table := newTable("lllrrrrrl", "Symbol", "Opened", "Closed", "Days", "Quantity", "Proceeds", "Cost Basis", "Gain/Loss", "Term")
	var total tradestats.Money
	for _, t := range trades {
		total = total.Add(t.GainLoss)
		table.row(
			t.Symbol,
			t.Opened.String(),
			t.Closed.String(),
			fmt.Sprint(t.DaysInTrade),
			t.Quantity.String(),
			t.Proceeds.String(),
			t.CostBasis.String(),
			t.GainLoss.SignedString(),
			t.Term.String(),
		)
	}
	table.row("**Total**", "", "", "", "", "", "", "**"+total.SignedString()+"**", "")
	table.print(&b)
	return b.String()
}

// CumulativeMarkdown renders the running total of realized gains.
func CumulativeMarkdown(points []tradestats.CumulativeGain) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Cumulative Gains\n\n")
	table := newTable("lr", "Date", "Cumulative Gain/Loss")
	for _, p := range points {
		table.row(p.Date.String(), p.GainLoss.SignedString())
	}
	table.print(&b)
	return b.String()
}

// SkippedMarkdown renders the rows dropped during an import, or nothing if there are none.
func SkippedMarkdown(skipped []tradestats.Skip) string {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "## Skipped Rows\n\n%d rows could not be imported.\n\n", len(skipped))
		for _, s := range skipped {
			fmt.Fprintf(w, "- %s\n", s)
		}
		fmt.Fprintln(w)
		return len(skipped) > 0
	})
	return b.String()
}
