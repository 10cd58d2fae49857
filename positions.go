package tradestats

import (
	"cmp"
	"slices"
)

// Side of an open position.
type Side int

const (
	Long Side = iota
	Short
)

func (s Side) String() string {
	if s == Short {
		return "short"
	}
	return "long"
}

func (s Side) MarshalJSON() ([]byte, error) { return []byte(`"` + s.String() + `"`), nil }

// OpenPosition is the unmatched quantity of a symbol after netting all its buys and sells.
type OpenPosition struct {
	Symbol      string   `json:"symbol"`
	Description string   `json:"description"`
	Side        Side     `json:"side"`
	Quantity    Quantity `json:"quantity"`  // always positive
	AvgCost     Money    `json:"avgCost"`   // per unit, weighted by quantity on the open side
	TotalCost   Money    `json:"totalCost"` // Quantity × AvgCost
	FirstTrade  Date     `json:"firstTradeDate"`
	LastTrade   Date     `json:"lastTradeDate"`
	TradeCount  int      `json:"tradeCount"`
}

// ledger accumulates the trades of a single symbol.
type ledger struct {
	description       string
	descriptionDate   Date
	bought, sold      Quantity
	buyCost, sellCost Money
	first, last       Date
	count             int
}

func (l *ledger) add(tx Transaction) {
	q := tx.quantity()
	cost := tx.unitPrice().Mul(q)
	if IsBuy(tx.Action) {
		l.bought = l.bought.Add(q)
		l.buyCost = l.buyCost.Add(cost)
	} else {
		l.sold = l.sold.Add(q)
		l.sellCost = l.sellCost.Add(cost)
	}
	if l.count == 0 || tx.Date.Before(l.first) {
		l.first = tx.Date
	}
	if l.count == 0 || tx.Date.After(l.last) {
		l.last = tx.Date
	}
	// earliest row wins, ties broken on the text itself
	if l.count == 0 || tx.Date.Before(l.descriptionDate) ||
		(tx.Date == l.descriptionDate && tx.Description < l.description) {
		l.description, l.descriptionDate = tx.Description, tx.Date
	}
	l.count++
}

// position returns the open position, or false if bought and sold quantities match.
func (l *ledger) position(symbol string) (OpenPosition, bool) {
	p := OpenPosition{
		Symbol:      symbol,
		Description: l.description,
		FirstTrade:  l.first,
		LastTrade:   l.last,
		TradeCount:  l.count,
	}
	var openQty Quantity
	var openCost Money
	switch l.bought.Cmp(l.sold) {
	case 0:
		return OpenPosition{}, false
	case 1:
		p.Side = Long
		p.Quantity = l.bought.Sub(l.sold)
		openQty, openCost = l.bought, l.buyCost
	default:
		p.Side = Short
		p.Quantity = l.sold.Sub(l.bought)
		openQty, openCost = l.sold, l.sellCost
	}
	p.AvgCost = openCost.Div(openQty)
	p.TotalCost = p.AvgCost.Mul(p.Quantity)
	return p, true
}

// OpenPositions nets the buy and sell quantities of every symbol and returns
// the symbols with an unmatched quantity.
//
// A symbol is long when more was bought than sold and short otherwise. The
// average cost is the quantity weighted price of all the transactions on the
// open side, no lot is matched. Transactions without symbol, without
// quantity or that neither buy nor sell are ignored.
//
// Positions are sorted by decreasing total cost then symbol, the input order does not matter.
func OpenPositions(txs []Transaction) []OpenPosition {
	ledgers := make(map[string]*ledger)
	for _, tx := range txs {
		if tx.Symbol == "" || tx.quantity().IsZero() {
			continue
		}
		if !IsBuy(tx.Action) && !IsSell(tx.Action) {
			continue
		}
		l, ok := ledgers[tx.Symbol]
		if !ok {
			l = new(ledger)
			ledgers[tx.Symbol] = l
		}
		l.add(tx)
	}

	positions := make([]OpenPosition, 0, len(ledgers))
	for symbol, l := range ledgers {
		if p, ok := l.position(symbol); ok {
			positions = append(positions, p)
		}
	}
	slices.SortFunc(positions, func(a, b OpenPosition) int {
		if c := b.TotalCost.Cmp(a.TotalCost); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	return positions
}
