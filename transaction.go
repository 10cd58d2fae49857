package tradestats

// RawTransaction is one entry of the BrokerageTransactions array of a
// brokerage transactions export. All fields are strings as exported.
type RawTransaction struct {
	Date        string `json:"Date"`
	Action      string `json:"Action"`
	Symbol      string `json:"Symbol"`
	Description string `json:"Description"`
	Quantity    string `json:"Quantity"`
	Price       string `json:"Price"`
	Fees        string `json:"Fees & Comm"`
	Amount      string `json:"Amount"`
	AcctgRuleCd string `json:"AcctgRuleCd"`
}

// Transaction is a normalized brokerage transaction.
//
// Transactions are created once by the parser and never modified.
type Transaction struct {
	ID          string
	Date        Date
	Action      string
	Symbol      string // upper case, empty for non trade actions like interests
	Description string
	Quantity    *Quantity // nil when the export has no quantity
	Price       *Money    // nil when the export has no price
	Fees        Money
	Amount      Money // signed: positive is cash in
	AcctgRule   string
}

// Category returns the action category of the transaction.
func (t Transaction) Category() ActionCategory { return Categorize(t.Action) }

// quantity returns the absolute quantity, or zero.
func (t Transaction) quantity() Quantity {
	if t.Quantity == nil {
		return Quantity{}
	}
	return t.Quantity.Abs()
}

// unitPrice returns the price per share, derived from the amount when the export has no price.
func (t Transaction) unitPrice() Money {
	if t.Price != nil {
		return *t.Price
	}
	q := t.quantity()
	if q.IsZero() {
		return Money{}
	}
	return t.Amount.Abs().Div(q)
}

// MarshalJSON writes the transaction with a stable field order, omitting missing values.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("action", t.Action)
	w.Append("category", t.Category().String())
	w.Optional("symbol", t.Symbol)
	w.Optional("description", t.Description)
	w.Optional("quantity", t.Quantity)
	w.Optional("price", t.Price)
	w.Append("fees", t.Fees)
	w.Append("amount", t.Amount)
	w.Optional("acctgRuleCd", t.AcctgRule)
	return w.MarshalJSON()
}

// TransactionFile is a parsed brokerage transactions export.
type TransactionFile struct {
	From, To     string // export range, as exported
	TotalAmount  Money
	TotalFees    Money
	Transactions []Transaction
	Skipped      []Skip
}
