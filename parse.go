package tradestats

import (
	"strings"

	"github.com/shopspring/decimal"
)

// numberNoise are the characters brokerage exports decorate numbers with.
var numberNoise = strings.NewReplacer("$", "", ",", "", `"`, "", "(", "", ")", "", "%", "", " ", "")

// parseDecimal reads an accounting formatted number like "$1,234.56", "-$12",
// "(1,234.56)" or "12.5%". Parenthesized values are negative.
func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	negative := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	s = strings.TrimPrefix(numberNoise.Replace(s), "+")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Abs().Neg()
	}
	return d, true
}

// ParseAmount reads a money amount. Blank or unparsable values are zero.
func ParseAmount(s string) Money {
	d, _ := parseDecimal(s)
	return Money{value: d}
}

// ParseQuantity reads a quantity. Blank or unparsable values are zero.
func ParseQuantity(s string) Quantity {
	d, _ := parseDecimal(s)
	return Quantity{value: d}
}

// parsePercent reads a percentage. Blank or unparsable values are zero.
func parsePercent(s string) Percent {
	d, _ := parseDecimal(s)
	return Percent(d.InexactFloat64())
}

// parseOptionalAmount is like ParseAmount but returns nil for blank or unparsable values.
func parseOptionalAmount(s string) *Money {
	d, ok := parseDecimal(s)
	if !ok {
		return nil
	}
	return &Money{value: d}
}

// parseOptionalQuantity is like ParseQuantity but returns nil for blank or unparsable values.
func parseOptionalQuantity(s string) *Quantity {
	d, ok := parseDecimal(s)
	if !ok {
		return nil
	}
	return &Quantity{value: d}
}
