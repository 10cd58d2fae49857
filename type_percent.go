package tradestats

import "fmt"

// Percent is a ratio expressed in percent, 12.5 means 12.5%.
type Percent float64

// ratio returns 100*part/total, or 0 when total is 0.
func ratio(part, total int) Percent {
	if total == 0 {
		return 0
	}
	return Percent(100 * float64(part) / float64(total))
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
