package tradestats

import "strings"

// Term is the holding period classification of a realized trade.
type Term int

const (
	ShortTerm Term = iota
	LongTerm
)

func (t Term) String() string {
	if t == LongTerm {
		return "Long Term"
	}
	return "Short Term"
}

// ParseTerm reads the term label of a realized gains export. Anything but
// "Long Term" is short term: the export's own classification is trusted.
func ParseTerm(label string) Term {
	if strings.EqualFold(strings.TrimSpace(label), "Long Term") {
		return LongTerm
	}
	return ShortTerm
}

func (t Term) MarshalJSON() ([]byte, error) { return []byte(`"` + t.String() + `"`), nil }

// TradeRecord is one matched round trip of a realized gains export.
type TradeRecord struct {
	Symbol                          string   `json:"symbol"`
	Name                            string   `json:"name"`
	Opened                          Date     `json:"openedDate"`
	Closed                          Date     `json:"closedDate"`
	Quantity                        Quantity `json:"quantity"`
	ProceedsPerShare                Money    `json:"proceedsPerShare"`
	CostPerShare                    Money    `json:"costPerShare"`
	Proceeds                        Money    `json:"proceeds"`
	CostBasis                       Money    `json:"costBasis"`
	GainLoss                        Money    `json:"gainLoss"`
	GainLossPercent                 Percent  `json:"gainLossPercent"`
	LongTermGainLoss                Money    `json:"longTermGainLoss"`
	ShortTermGainLoss               Money    `json:"shortTermGainLoss"`
	Term                            Term     `json:"term"`
	UnadjustedCostBasis             Money    `json:"unadjustedCostBasis"`
	WashSale                        string   `json:"washSale,omitempty"`
	DisallowedLoss                  Money    `json:"disallowedLoss"`
	TransactionClosed               string   `json:"transactionClosedDate,omitempty"`
	TransactionCostBasis            Money    `json:"transactionCostBasis"`
	TotalTransactionGainLoss        Money    `json:"totalTransactionGainLoss"`
	TotalTransactionGainLossPercent Percent  `json:"totalTransactionGainLossPercent"`
	LTTransactionGainLoss           Money    `json:"ltTransactionGainLoss"`
	LTTransactionGainLossPercent    Percent  `json:"ltTransactionGainLossPercent"`
	STTransactionGainLoss           Money    `json:"stTransactionGainLoss"`
	STTransactionGainLossPercent    Percent  `json:"stTransactionGainLossPercent"`
	DaysInTrade                     int      `json:"daysInTrade"`
}

// IsWin reports whether the trade realized a gain.
func (t TradeRecord) IsWin() bool { return t.GainLoss.IsPositive() }

// IsLoss reports whether the trade realized a loss.
func (t TradeRecord) IsLoss() bool { return t.GainLoss.IsNegative() }

// TradeFile is a parsed realized gains export.
type TradeFile struct {
	Summary string   // free text first row
	Header  []string // column names, as exported
	Trades  []TradeRecord
	Skipped []Skip
}
