package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

type transactionsCmd struct {
	exportFlags
	symbol   string
	action   string
	category string
	date     string
	start    string
	end      string
}

func newTransactionsCmd() *transactionsCmd {
	return &transactionsCmd{exportFlags: exportFlags{ext: ".json"}}
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list brokerage transactions" }
func (*transactionsCmd) Usage() string {
	return `tsx transactions -f <file.json> [-s <symbol>] [-a <action>] [-c <category>] [-d <date> | -from <date> -to <date>] [-json]

  Lists the transactions of a brokerage transactions export. Filters combine.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	c.exportFlags.SetFlags(f)
	f.StringVar(&c.symbol, "s", "", "Only show the transactions of this symbol, or of this \"[action]\" key.")
	f.StringVar(&c.action, "a", "", "Only show the transactions with this action.")
	f.StringVar(&c.category, "c", "", "Only show the transactions of this category (trade, option, income, expense, other).")
	f.StringVar(&c.date, "d", "", "Only show the transactions of this day.")
	f.StringVar(&c.start, "from", "", "Only show the transactions on or after this day.")
	f.StringVar(&c.end, "to", "", "Only show the transactions on or before this day.")
}

// filters returns the filters selected by the flags, and the title they give to the report.
func (c *transactionsCmd) filters() ([]func([]tradestats.Transaction) []tradestats.Transaction, string, error) {
	var filters []func([]tradestats.Transaction) []tradestats.Transaction
	title := "Transactions"

	if c.date != "" && (c.start != "" || c.end != "") {
		return nil, "", fmt.Errorf("-d cannot be used with -from or -to")
	}
	if c.date != "" {
		day, err := tradestats.ParseDate(c.date)
		if err != nil {
			return nil, "", fmt.Errorf("parsing -d: %w", err)
		}
		filters = append(filters, func(txs []tradestats.Transaction) []tradestats.Transaction {
			return tradestats.TransactionsOn(txs, day)
		})
		title += " of " + day.String()
	}
	if c.start != "" || c.end != "" {
		var r tradestats.Range
		var err error
		if r.From, err = optionalDate(c.start, tradestats.NewDate(1, 1, 1)); err != nil {
			return nil, "", fmt.Errorf("parsing -from: %w", err)
		}
		if r.To, err = optionalDate(c.end, tradestats.NewDate(9999, 12, 31)); err != nil {
			return nil, "", fmt.Errorf("parsing -to: %w", err)
		}
		filters = append(filters, func(txs []tradestats.Transaction) []tradestats.Transaction {
			return tradestats.TransactionsIn(txs, r)
		})
		title += fmt.Sprintf(" from %s to %s", r.From, r.To)
	}
	if c.category != "" {
		category, err := tradestats.ParseActionCategory(c.category)
		if err != nil {
			return nil, "", err
		}
		filters = append(filters, func(txs []tradestats.Transaction) []tradestats.Transaction {
			return tradestats.TransactionsByCategory(txs, category)
		})
		title += " (" + category.String() + ")"
	}
	if c.action != "" {
		filters = append(filters, func(txs []tradestats.Transaction) []tradestats.Transaction {
			return tradestats.TransactionsByAction(txs, c.action)
		})
		title += " (" + c.action + ")"
	}
	if c.symbol != "" {
		filters = append(filters, func(txs []tradestats.Transaction) []tradestats.Transaction {
			return tradestats.TransactionsBySymbol(txs, c.symbol)
		})
		title += " on " + c.symbol
	}
	return filters, title, nil
}

func optionalDate(s string, def tradestats.Date) (tradestats.Date, error) {
	if s == "" {
		return def, nil
	}
	return tradestats.ParseDate(s)
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filters, title, err := c.filters()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	file, status := c.transactions()
	if status != subcommands.ExitSuccess {
		return status
	}

	txs := file.Transactions
	for _, filter := range filters {
		txs = filter(txs)
	}
	return c.print(txs, func() string { return renderer.TransactionsMarkdown(title, txs) })
}
