package tradestats

import (
	"fmt"
	"strings"
)

// ActionCategory is a coarse classification of a brokerage action label.
type ActionCategory int

const (
	Other ActionCategory = iota
	Trade
	Option
	Income
	Expense
)

// Categories lists all categories, in display order.
var Categories = []ActionCategory{Trade, Option, Income, Expense, Other}

func (c ActionCategory) String() string {
	switch c {
	case Trade:
		return "trade"
	case Option:
		return "option"
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "other"
	}
}

// ParseActionCategory parses the name of a category as returned by String.
func ParseActionCategory(s string) (ActionCategory, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if c.String() == s {
			return c, nil
		}
	}
	return Other, fmt.Errorf("unknown action category %q", s)
}

// direction of a trade or option action.
type direction int

const (
	noDirection direction = iota
	buying
	selling
)

type actionInfo struct {
	category  ActionCategory
	direction direction
}

// actions holds the fixed action sets, keyed by lower case label.
var actions = map[string]actionInfo{
	"buy":          {Trade, buying},
	"sell":         {Trade, selling},
	"sell short":   {Trade, selling},
	"buy to cover": {Trade, buying},

	"buy to open":   {Option, buying},
	"sell to open":  {Option, selling},
	"buy to close":  {Option, buying},
	"sell to close": {Option, selling},

	"qualified dividend":     {Income, noDirection},
	"non-qualified dividend": {Income, noDirection},
	"bank interest":          {Income, noDirection},
	"credit interest":        {Income, noDirection},

	"margin interest":  {Expense, noDirection},
	"foreign tax paid": {Expense, noDirection},
	"adr mgmt fee":     {Expense, noDirection},
}

func lookupAction(action string) actionInfo {
	return actions[strings.ToLower(strings.TrimSpace(action))]
}

// Categorize returns the category of a brokerage action label.
// Unknown labels are Other.
func Categorize(action string) ActionCategory { return lookupAction(action).category }

// IsBuy reports whether action buys shares or contracts ("Buy", "Buy to Cover", "Buy to Open", "Buy to Close").
func IsBuy(action string) bool { return lookupAction(action).direction == buying }

// IsSell reports whether action sells shares or contracts ("Sell", "Sell Short", "Sell to Open", "Sell to Close").
func IsSell(action string) bool { return lookupAction(action).direction == selling }

func (c ActionCategory) MarshalJSON() ([]byte, error) { return []byte(`"` + c.String() + `"`), nil }
