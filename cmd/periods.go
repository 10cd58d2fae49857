package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

type periodsCmd struct {
	exportFlags
	period string
	fill   bool
}

func newPeriodsCmd() *periodsCmd { return &periodsCmd{exportFlags: exportFlags{ext: ".csv"}} }

func (*periodsCmd) Name() string     { return "periods" }
func (*periodsCmd) Synopsis() string { return "realized gains per day, week, month, quarter or year" }
func (*periodsCmd) Usage() string {
	return `tsx periods -f <file.csv> [-p <period>] [-fill] [-json]

  Groups the trades of a realized gains export by the period of their closed
  date and shows the statistics of each period. The period key can be given to
  'tsx trades -p <period> -k <key>' to list the trades of that period.
`
}

func (c *periodsCmd) SetFlags(f *flag.FlagSet) {
	c.exportFlags.SetFlags(f)
	f.StringVar(&c.period, "p", tradestats.Monthly.String(), "Period (daily, weekly, monthly, quarterly, yearly).")
	f.BoolVar(&c.fill, "fill", false, "Show the periods without any closed trade.")
}

func (c *periodsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := tradestats.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	file, status := c.trades()
	if status != subcommands.ExitSuccess {
		return status
	}

	stats := tradestats.AggregateTrades(file.Trades, p)
	if c.fill {
		stats = tradestats.FillPeriods(stats, p)
	}
	return c.print(stats, func() string { return renderer.PeriodsMarkdown(p, stats) })
}
