package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/tradestats"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// document is the structure of a rendered markdown document.
type document struct {
	headings []string
	tables   [][][]string // table, row, cell; the header is the first row
}

// parse parses markdown with the GFM table extension.
func parse(t *testing.T, md string) document {
	t.Helper()
	source := []byte(md)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	root := parser.Parse(text.NewReader(source))

	var doc document
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			doc.headings = append(doc.headings, plain(n, source))
			return ast.WalkSkipChildren, nil
		case *extast.Table:
			doc.tables = append(doc.tables, nil)
		case *extast.TableHeader, *extast.TableRow:
			last := len(doc.tables) - 1
			doc.tables[last] = append(doc.tables[last], nil)
		case *extast.TableCell:
			table := doc.tables[len(doc.tables)-1]
			table[len(table)-1] = append(table[len(table)-1], plain(n, source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return doc
}

// plain returns the text content of n, without emphasis markers.
func plain(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func trades() []tradestats.TradeRecord {
	mk := func(symbol, opened, closed string, gain float64, term tradestats.Term) tradestats.TradeRecord {
		o, c := tradestats.MustParse(opened), tradestats.MustParse(closed)
		return tradestats.TradeRecord{
			Symbol: symbol, Opened: o, Closed: c, DaysInTrade: o.DaysUntil(c),
			Quantity: tradestats.Q(10), GainLoss: tradestats.M(gain), Term: term,
		}
	}
	return []tradestats.TradeRecord{
		mk("AAPL", "2023-01-10", "2024-02-15", 150, tradestats.LongTerm),
		mk("MSFT", "2024-02-01", "2024-02-20", -50.5, tradestats.ShortTerm),
		mk("AAPL", "2024-03-01", "2024-03-04", 1200, tradestats.ShortTerm),
	}
}

func TestGainsMarkdown(t *testing.T) {
	file := &tradestats.TradeFile{
		Summary: "Realized Gain/Loss",
		Trades:  trades(),
		Skipped: []tradestats.Skip{{Row: 7, Err: &tradestats.MalformedRowError{Row: 7, Field: "symbol", Reason: "missing required field"}}},
	}
	doc := parse(t, GainsMarkdown(file))

	want := []string{"Realized Gains", "Gains per Term", "Gains per Ticker", "Skipped Rows"}
	if diff := cmp.Diff(want, doc.headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
	summary := doc.tables[0]
	if got, want := summary[1], []string{"Total Gain/Loss", "+$1,299.50"}; !cmp.Equal(got, want) {
		t.Errorf("summary total = %v, want %v", got, want)
	}
	tickers := doc.tables[2]
	wantTickers := [][]string{
		{"Ticker", "Gain/Loss", "Trades"},
		{"AAPL", "+$1,350.00", "2"},
		{"MSFT", "-$50.50", "1"},
	}
	if diff := cmp.Diff(wantTickers, tickers); diff != "" {
		t.Errorf("tickers mismatch (-want +got):\n%s", diff)
	}
}

func TestGainsMarkdown_NoSkipped(t *testing.T) {
	md := GainsMarkdown(&tradestats.TradeFile{Trades: trades()})
	if strings.Contains(md, "Skipped Rows") {
		t.Errorf("GainsMarkdown() renders a skipped section without skipped rows:\n%s", md)
	}
}

func TestPeriodsMarkdown(t *testing.T) {
	stats := tradestats.AggregateTrades(trades(), tradestats.Monthly)
	doc := parse(t, PeriodsMarkdown(tradestats.Monthly, stats))

	if diff := cmp.Diff([]string{"Monthly Performance"}, doc.headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{
		{"Month", "Key", "Net Gain/Loss", "Trades", "Win Rate", "Avg Gain", "Avg Loss"},
		{"Feb 2024", "2024-02-01", "+$99.50", "2", "50.00%", "$150.00", "$50.50"},
		{"Mar 2024", "2024-03-01", "+$1,200.00", "1", "100.00%", "$1,200.00", "$0.00"},
		{"Total", "", "+$1,299.50", "3", "66.67%", "", ""},
	}
	if diff := cmp.Diff(want, doc.tables[0]); diff != "" {
		t.Errorf("periods mismatch (-want +got):\n%s", diff)
	}
}

func TestTradesMarkdown(t *testing.T) {
	doc := parse(t, TradesMarkdown("Trades of AAPL", trades()[:1]))
	want := [][]string{
		{"Symbol", "Opened", "Closed", "Days", "Quantity", "Proceeds", "Cost Basis", "Gain/Loss", "Term"},
		{"AAPL", "2023-01-10", "2024-02-15", "401", "10", "$0.00", "$0.00", "+$150.00", "Long Term"},
		{"Total", "", "", "", "", "", "", "+$150.00", ""},
	}
	if diff := cmp.Diff(want, doc.tables[0]); diff != "" {
		t.Errorf("trades mismatch (-want +got):\n%s", diff)
	}
	if md := TradesMarkdown("None", nil); !strings.Contains(md, "No trades.") {
		t.Errorf("TradesMarkdown(nil) = %q, want No trades.", md)
	}
}

func transactions() []tradestats.Transaction {
	q, p := tradestats.Q(10), tradestats.M(100)
	sold := tradestats.Q(4)
	return []tradestats.Transaction{
		{Date: tradestats.MustParse("2024-03-01"), Action: "Buy", Symbol: "AAPL", Description: "APPLE INC", Quantity: &q, Price: &p, Amount: tradestats.M(-1000)},
		{Date: tradestats.MustParse("2024-03-05"), Action: "Sell", Symbol: "AAPL", Quantity: &sold, Amount: tradestats.M(480)},
		{Date: tradestats.MustParse("2024-03-05"), Action: "Bank Interest", Amount: tradestats.M(1.25)},
	}
}

func TestPositionsMarkdown(t *testing.T) {
	doc := parse(t, PositionsMarkdown(tradestats.OpenPositions(transactions())))
	want := [][]string{
		{"Symbol", "Description", "Side", "Quantity", "Avg Cost", "Total Cost", "First Trade", "Last Trade", "Trades"},
		{"AAPL", "APPLE INC", "long", "6", "$100.00", "$600.00", "2024-03-01", "2024-03-05", "2"},
		{"Total", "", "", "", "", "$600.00", "", "", ""},
	}
	if diff := cmp.Diff(want, doc.tables[0]); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	doc := parse(t, TransactionsMarkdown("Transactions", transactions()))
	table := doc.tables[0]
	if len(table) != 4 {
		t.Fatalf("got %d rows, want a header and 3 transactions", len(table))
	}
	if got, want := table[3], []string{"2024-03-05", "Bank Interest", "income", "", "", "-", "-", "$0.00", "+$1.25"}; !cmp.Equal(got, want) {
		t.Errorf("interest row = %v, want %v", got, want)
	}
}

func TestTransactionSummaryMarkdown(t *testing.T) {
	file := &tradestats.TransactionFile{From: "03/01/2024", To: "03/31/2024", Transactions: transactions()}
	doc := parse(t, TransactionSummaryMarkdown(file))
	if diff := cmp.Diff([]string{"Transactions Summary", "Actions"}, doc.headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
	summary := doc.tables[0]
	if got, want := summary[len(summary)-1], []string{"Net Cash Flow", "-$518.75"}; !cmp.Equal(got, want) {
		t.Errorf("net cash flow row = %v, want %v", got, want)
	}
}

func TestSymbolsActionsDaily(t *testing.T) {
	txs := transactions()

	symbols := parse(t, SymbolsMarkdown(tradestats.SymbolSummaries(txs))).tables[0]
	if got, want := symbols[1][0], "AAPL"; got != want {
		t.Errorf("first symbol = %q, want %q", got, want)
	}
	if got, want := symbols[2][7], "-"; got != want {
		t.Errorf("average buy price of interests = %q, want %q", got, want)
	}

	actions := parse(t, ActionsMarkdown(tradestats.CategorySummaries(txs), tradestats.ActionSummaries(txs)))
	if len(actions.tables) != 2 {
		t.Fatalf("ActionsMarkdown() has %d tables, want 2", len(actions.tables))
	}
	if got, want := actions.tables[0][1], []string{"trade", "2", "-$520.00", "$0.00"}; !cmp.Equal(got, want) {
		t.Errorf("trade category = %v, want %v", got, want)
	}

	daily := parse(t, DailyMarkdown(tradestats.DailyVolumes(txs))).tables[0]
	want := [][]string{
		{"Date", "Buy Volume", "Sell Volume", "Net Volume", "Transactions"},
		{"2024-03-01", "$1,000.00", "$0.00", "-$1,000.00", "1"},
		{"2024-03-05", "$0.00", "$480.00", "+$480.00", "2"},
	}
	if diff := cmp.Diff(want, daily); diff != "" {
		t.Errorf("daily mismatch (-want +got):\n%s", diff)
	}
}

func TestTable(t *testing.T) {
	var b strings.Builder
	table := newTable("lr", "Symbol", "Description")
	table.row("AAPL", "APPLE | INC\nCOMMON")
	table.print(&b)
	want := "| Symbol | Description |\n" +
		"|:--------|--------:|\n" +
		"| AAPL | APPLE \\| INC COMMON |\n"
	if got := b.String(); got != want {
		t.Errorf("table.print() = %q, want %q", got, want)
	}
}
