package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

type dailyCmd struct {
	exportFlags
}

func newDailyCmd() *dailyCmd { return &dailyCmd{exportFlags{ext: ".json"}} }

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "traded volume per day" }
func (*dailyCmd) Usage() string {
	return `tsx daily -f <file.json> [-json]

  Shows, for each day with transactions, the buy and sell volumes and the
  number of transactions.
`
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, status := c.transactions()
	if status != subcommands.ExitSuccess {
		return status
	}
	volumes := tradestats.DailyVolumes(file.Transactions)
	return c.print(volumes, func() string { return renderer.DailyMarkdown(volumes) })
}
