package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

type tradesCmd struct {
	exportFlags
	symbol     string
	period     string
	key        string
	cumulative bool
}

func newTradesCmd() *tradesCmd { return &tradesCmd{exportFlags: exportFlags{ext: ".csv"}} }

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list realized trades" }
func (*tradesCmd) Usage() string {
	return `tsx trades -f <file.csv> [-s <symbol>] [-p <period> -k <key>] [-cumulative] [-json]

  Lists the trades of a realized gains export, optionally restricted to a
  symbol or to a period. The key identifies the period as shown by 'tsx periods',
  any date within the period is accepted.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	c.exportFlags.SetFlags(f)
	f.StringVar(&c.symbol, "s", "", "Only show the trades of this symbol.")
	f.StringVar(&c.period, "p", tradestats.Monthly.String(), "Period of the key (daily, weekly, monthly, quarterly, yearly).")
	f.StringVar(&c.key, "k", "", "Only show the trades closed within the period identified by this key.")
	f.BoolVar(&c.cumulative, "cumulative", false, "Show the cumulative gain after each trade instead.")
}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := tradestats.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	file, status := c.trades()
	if status != subcommands.ExitSuccess {
		return status
	}

	trades := file.Trades
	title := "Trades"
	if c.key != "" {
		trades, err = tradestats.TradesInPeriod(trades, p, c.key)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		title = "Trades of " + p.Label(p.Range(tradestats.MustParse(c.key)))
	}
	if c.symbol != "" {
		trades = tradestats.TradesBySymbol(trades, c.symbol)
		title += " on " + c.symbol
	}

	if c.cumulative {
		points := tradestats.CumulativeGains(trades)
		return c.print(points, func() string { return renderer.CumulativeMarkdown(points) })
	}
	return c.print(trades, func() string { return renderer.TradesMarkdown(title, trades) })
}
