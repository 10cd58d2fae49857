package tradestats

import (
	"fmt"
	"strings"
)

// Period is a calendar granularity used to bucket trades.
type Period int

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the period (e.g., "day", "week", "month").
func (p Period) Name() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// Range returns a Range for the given period containing the date d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// Label returns a human readable name for the period range starting on from.
func (p Period) Label(r Range) string {
	switch p {
	case Daily:
		return r.From.Format("Jan 02, 2006")
	case Weekly:
		return r.From.Format("Jan 02") + " - " + r.To.Format("Jan 02, 2006")
	case Monthly:
		return r.From.Format("Jan 2006")
	case Quarterly:
		return fmt.Sprintf("Q%d %d", (r.From.Month()-1)/3+1, r.From.Year())
	case Yearly:
		return r.From.Format("2006")
	default:
		return r.From.String() + " - " + r.To.String()
	}
}

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}
