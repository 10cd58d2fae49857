package tradestats

import (
	"log/slog"
	"maps"
	"slices"
)

// PeriodStats are the statistics of the trades closed within one calendar period.
type PeriodStats struct {
	Label       string        `json:"period"`
	Key         string        `json:"periodKey"` // start date, see [TradesInPeriod]
	Range       Range         `json:"range"`
	NetGainLoss Money         `json:"netGainLoss"`
	TradeCount  int           `json:"tradeCount"`
	Winning     int           `json:"winningTrades"`
	Losing      int           `json:"losingTrades"`
	WinRate     Percent       `json:"winRate"`
	AverageGain Money         `json:"averageGain"`
	AverageLoss Money         `json:"averageLoss"` // absolute value
	Trades      []TradeRecord `json:"trades"`
}

// tally accumulates gains and losses of a set of trades.
type tally struct {
	count          int
	net            Money
	wins, losses   int
	gains, deficit Money // deficit is negative
	days           int
}

func (t *tally) add(trade TradeRecord) {
	t.count++
	t.net = t.net.Add(trade.GainLoss)
	t.days += trade.DaysInTrade
	switch {
	case trade.IsWin():
		t.wins++
		t.gains = t.gains.Add(trade.GainLoss)
	case trade.IsLoss():
		t.losses++
		t.deficit = t.deficit.Add(trade.GainLoss)
	}
}

func (t *tally) winRate() Percent   { return ratio(t.wins, t.count) }
func (t *tally) averageGain() Money { return t.gains.DivN(t.wins) }
func (t *tally) averageLoss() Money { return t.deficit.Abs().DivN(t.losses) }

// newPeriodStats computes the statistics of trades, all closed in r.
func newPeriodStats(p Period, r Range, trades []TradeRecord) PeriodStats {
	var t tally
	for _, trade := range trades {
		t.add(trade)
	}
	return PeriodStats{
		Label:       p.Label(r),
		Key:         r.Key(),
		Range:       r,
		NetGainLoss: t.net,
		TradeCount:  t.count,
		Winning:     t.wins,
		Losing:      t.losses,
		WinRate:     t.winRate(),
		AverageGain: t.averageGain(),
		AverageLoss: t.averageLoss(),
		Trades:      trades,
	}
}

// AggregateTrades buckets trades by the period containing their closed date
// and returns the statistics of each bucket in ascending order.
//
// Weeks start on Monday. Only periods with at least one trade are returned.
// Trades without a closed date are left out.
func AggregateTrades(trades []TradeRecord, p Period) []PeriodStats {
	buckets := make(map[Date][]TradeRecord)
	for _, trade := range trades {
		if trade.Closed.IsZero() {
			slog.Warn("trade without closed date left out of aggregation", "symbol", trade.Symbol, "opened", trade.Opened)
			continue
		}
		start := trade.Closed.StartOf(p)
		buckets[start] = append(buckets[start], trade)
	}

	starts := slices.SortedFunc(maps.Keys(buckets), Date.Compare)
	stats := make([]PeriodStats, 0, len(starts))
	for _, start := range starts {
		stats = append(stats, newPeriodStats(p, p.Range(start), buckets[start]))
	}
	return stats
}

// FillPeriods returns the statistics of every period between the first and
// last period of stats, inserting empty periods where no trade was closed.
// stats must be sorted, as returned by [AggregateTrades].
func FillPeriods(stats []PeriodStats, p Period) []PeriodStats {
	if len(stats) == 0 {
		return nil
	}
	byKey := make(map[string]PeriodStats, len(stats))
	for _, s := range stats {
		byKey[s.Key] = s
	}
	span := NewRange(stats[0].Range.From, stats[len(stats)-1].Range.To)
	var filled []PeriodStats
	for r := range span.Periods(p) {
		s, ok := byKey[r.Key()]
		if !ok {
			s = newPeriodStats(p, r, nil)
		}
		filled = append(filled, s)
	}
	return filled
}
