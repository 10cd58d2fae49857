package tradestats

import (
	"cmp"
	"slices"
)

// TradeSummary are the statistics of a whole realized gains export.
type TradeSummary struct {
	TotalGainLoss      Money   `json:"totalGainLoss"`
	TotalTrades        int     `json:"totalTrades"`
	WinningTrades      int     `json:"winningTrades"`
	LosingTrades       int     `json:"losingTrades"`
	WinRate            Percent `json:"winRate"`
	AverageWin         Money   `json:"averageWin"`
	AverageLoss        Money   `json:"averageLoss"` // absolute value
	AverageDaysInTrade float64 `json:"averageDaysInTrade"`

	LargestWin         Money   `json:"largestWin"`
	LargestLoss        Money   `json:"largestLoss"` // most negative gain, or zero
	LargestWinPercent  Percent `json:"largestWinPercent"`
	LargestLossPercent Percent `json:"largestLossPercent"`
}

// SummarizeTrades computes the statistics of trades. Averages of an empty subset are zero.
func SummarizeTrades(trades []TradeRecord) TradeSummary {
	var t tally
	var s TradeSummary
	for _, trade := range trades {
		t.add(trade)
		if trade.IsWin() && trade.GainLoss.GreaterThan(s.LargestWin) {
			s.LargestWin = trade.GainLoss
		}
		if trade.IsLoss() && trade.GainLoss.LessThan(s.LargestLoss) {
			s.LargestLoss = trade.GainLoss
		}
		s.LargestWinPercent = max(s.LargestWinPercent, trade.GainLossPercent)
		s.LargestLossPercent = min(s.LargestLossPercent, trade.GainLossPercent)
	}
	s.TotalGainLoss = t.net
	s.TotalTrades = t.count
	s.WinningTrades = t.wins
	s.LosingTrades = t.losses
	s.WinRate = t.winRate()
	s.AverageWin = t.averageGain()
	s.AverageLoss = t.averageLoss()
	if t.count > 0 {
		s.AverageDaysInTrade = float64(t.days) / float64(t.count)
	}
	return s
}

// TickerGain is the realized gain of one symbol.
type TickerGain struct {
	Symbol     string `json:"ticker"`
	GainLoss   Money  `json:"totalGainLoss"`
	TradeCount int    `json:"tradeCount"`
}

// TickerPerformance returns the realized gain per symbol, best first.
func TickerPerformance(trades []TradeRecord) []TickerGain {
	bySymbol := make(map[string]*TickerGain)
	for _, trade := range trades {
		g, ok := bySymbol[trade.Symbol]
		if !ok {
			g = &TickerGain{Symbol: trade.Symbol}
			bySymbol[trade.Symbol] = g
		}
		g.GainLoss = g.GainLoss.Add(trade.GainLoss)
		g.TradeCount++
	}
	gains := make([]TickerGain, 0, len(bySymbol))
	for _, g := range bySymbol {
		gains = append(gains, *g)
	}
	slices.SortFunc(gains, func(a, b TickerGain) int {
		if c := b.GainLoss.Cmp(a.GainLoss); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	return gains
}

// CumulativeGain is the running total of realized gains after a trade.
type CumulativeGain struct {
	Date     Date  `json:"date"`
	GainLoss Money `json:"cumulativeGain"`
}

// CumulativeGains returns the running total of gains, one point per trade in closed date order.
// Trades closed the same day are ordered by symbol, then by opened date.
func CumulativeGains(trades []TradeRecord) []CumulativeGain {
	sorted := slices.Clone(trades)
	slices.SortStableFunc(sorted, func(a, b TradeRecord) int {
		if c := a.Closed.Compare(b.Closed); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Symbol, b.Symbol); c != 0 {
			return c
		}
		return a.Opened.Compare(b.Opened)
	})
	points := make([]CumulativeGain, 0, len(sorted))
	var total Money
	for _, trade := range sorted {
		total = total.Add(trade.GainLoss)
		points = append(points, CumulativeGain{Date: trade.Closed, GainLoss: total})
	}
	return points
}

// TermGain is the realized gain of one holding period term.
type TermGain struct {
	Term     Term  `json:"term"`
	GainLoss Money `json:"gainLoss"`
	Count    int   `json:"count"`
}

// TermDistribution returns the realized gain per term, short term first.
// Terms without trades are left out.
func TermDistribution(trades []TradeRecord) []TermGain {
	terms := []TermGain{{Term: ShortTerm}, {Term: LongTerm}}
	for _, trade := range trades {
		g := &terms[trade.Term]
		g.GainLoss = g.GainLoss.Add(trade.GainLoss)
		g.Count++
	}
	return slices.DeleteFunc(terms, func(g TermGain) bool { return g.Count == 0 })
}
