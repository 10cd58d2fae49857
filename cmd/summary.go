package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	exportFlags
}

func newSummaryCmd() *summaryCmd { return &summaryCmd{exportFlags{ext: ".json"}} }

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "summarize a brokerage transactions export" }
func (*summaryCmd) Usage() string {
	return `tsx summary -f <file.json> [-json]

  Displays the volumes, fees and net cash flow of a brokerage transactions
  export, and the number of transactions per action.
`
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, status := c.transactions()
	if status != subcommands.ExitSuccess {
		return status
	}
	summary := tradestats.SummarizeTransactions(file.Transactions)
	return c.print(summary, func() string { return renderer.TransactionSummaryMarkdown(file) })
}

type positionsCmd struct {
	exportFlags
}

func newPositionsCmd() *positionsCmd { return &positionsCmd{exportFlags{ext: ".json"}} }

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "open positions at the end of a transactions export" }
func (*positionsCmd) Usage() string {
	return `tsx positions -f <file.json> [-json]

  Nets the buys and sells of each symbol and shows the positions left open,
  long or short, with their weighted average cost. See 'tsx topic positions'.
`
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, status := c.transactions()
	if status != subcommands.ExitSuccess {
		return status
	}
	positions := tradestats.OpenPositions(file.Transactions)
	return c.print(positions, func() string { return renderer.PositionsMarkdown(positions) })
}

type symbolsCmd struct {
	exportFlags
}

func newSymbolsCmd() *symbolsCmd { return &symbolsCmd{exportFlags{ext: ".json"}} }

func (*symbolsCmd) Name() string     { return "symbols" }
func (*symbolsCmd) Synopsis() string { return "totals per symbol" }
func (*symbolsCmd) Usage() string {
	return `tsx symbols -f <file.json> [-json]

  Shows the quantities, amounts, fees and average prices of each symbol.
  Transactions without symbol are grouped by action, like "[Margin Interest]".
`
}

func (c *symbolsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, status := c.transactions()
	if status != subcommands.ExitSuccess {
		return status
	}
	summaries := tradestats.SymbolSummaries(file.Transactions)
	return c.print(summaries, func() string { return renderer.SymbolsMarkdown(summaries) })
}

type actionsCmd struct {
	exportFlags
}

func newActionsCmd() *actionsCmd { return &actionsCmd{exportFlags{ext: ".json"}} }

func (*actionsCmd) Name() string     { return "actions" }
func (*actionsCmd) Synopsis() string { return "totals per category and action" }
func (*actionsCmd) Usage() string {
	return `tsx actions -f <file.json> [-json]

  Shows the amounts and fees of each action category (trade, option, income,
  expense, other) and of each action. See 'tsx topic actions'.
`
}

type actionsReport struct {
	Categories []tradestats.CategorySummary `json:"categories"`
	Actions    []tradestats.ActionSummary   `json:"actions"`
}

func (c *actionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, status := c.transactions()
	if status != subcommands.ExitSuccess {
		return status
	}
	report := actionsReport{
		Categories: tradestats.CategorySummaries(file.Transactions),
		Actions:    tradestats.ActionSummaries(file.Transactions),
	}
	return c.print(report, func() string { return renderer.ActionsMarkdown(report.Categories, report.Actions) })
}
