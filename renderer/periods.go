package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tradestats"
)

// PeriodsMarkdown renders the statistics of each period, with a total row.
func PeriodsMarkdown(p tradestats.Period, stats []tradestats.PeriodStats) string {
	var b strings.Builder
	title := strings.ToUpper(p.String()[:1]) + p.String()[1:]
	fmt.Fprintf(&b, "# %s Performance\n\n", title)
	if len(stats) == 0 {
		fmt.Fprint(&b, "No trades.\n")
		return b.String()
	}

	table := newTable("llrrrrr", strings.ToUpper(p.Name()[:1])+p.Name()[1:], "Key", "Net Gain/Loss", "Trades", "Win Rate", "Avg Gain", "Avg Loss")
	var net tradestats.Money
	count, wins := 0, 0
	for _, s := range stats {
		net = net.Add(s.NetGainLoss)
		count += s.TradeCount
		wins += s.Winning
		table.row(
			s.Label,
			s.Key,
			s.NetGainLoss.SignedString(),
			fmt.Sprint(s.TradeCount),
			s.WinRate.String(),
			s.AverageGain.String(),
			s.AverageLoss.String(),
		)
	}
	rate := tradestats.Percent(0)
	if count > 0 {
		rate = tradestats.Percent(100 * float64(wins) / float64(count))
	}
	table.row("**Total**", "", "**"+net.SignedString()+"**", fmt.Sprint(count), rate.String(), "", "")
	table.print(&b)
	return b.String()
}
