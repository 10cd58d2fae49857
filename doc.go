// Package tradestats computes trading statistics from the files a brokerage
// exports. It is stateless: every function works on the records given and
// nothing is kept between calls.
//
// Two exports are supported:
//   - Realized gains (CSV): one row per closed trade, see [ParseTradesCSV].
//     Trades are summarized with [SummarizeTrades], grouped by day, week,
//     month, quarter or year with [AggregateTrades], and broken down per
//     ticker and per term.
//   - Brokerage transactions (JSON): one object per account movement, see
//     [ParseTransactionsJSON]. Transactions are summarized with
//     [SummarizeTransactions], per symbol, per action and per day, and netted
//     into open positions with [OpenPositions].
//
// [Import] selects the parser from the file name. Amounts are exact decimals
// in US dollars, see [Money].
//
// This package serves as the foundational logic for the `tsx` command-line
// tool.
package tradestats
