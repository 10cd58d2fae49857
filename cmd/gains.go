package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	exportFlags
}

func newGainsCmd() *gainsCmd { return &gainsCmd{exportFlags{ext: ".csv"}} }

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized gain analysis" }
func (*gainsCmd) Usage() string {
	return `tsx gains -f <file.csv> [-json]

  Summarizes a realized gains export: win rate, average win and loss, gains
  per term and per ticker.
`
}

type gainsReport struct {
	Summary    tradestats.TradeSummary     `json:"summary"`
	Terms      []tradestats.TermGain       `json:"terms"`
	Tickers    []tradestats.TickerGain     `json:"tickers"`
	Cumulative []tradestats.CumulativeGain `json:"cumulative"`
	Skipped    []tradestats.Skip           `json:"skipped,omitempty"`
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, status := c.trades()
	if status != subcommands.ExitSuccess {
		return status
	}
	report := gainsReport{
		Summary:    tradestats.SummarizeTrades(file.Trades),
		Terms:      tradestats.TermDistribution(file.Trades),
		Tickers:    tradestats.TickerPerformance(file.Trades),
		Cumulative: tradestats.CumulativeGains(file.Trades),
		Skipped:    file.Skipped,
	}
	return c.print(report, func() string { return renderer.GainsMarkdown(file) })
}
