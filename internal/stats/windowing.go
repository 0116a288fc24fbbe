package stats

import (
	"fmt"
	"time"

	"deskpulse/internal/ticket"
)

// Range is a named, wall-clock-relative filter over ticket creation dates.
type Range string

const (
	RangeAll       Range = "all"
	RangeLast7     Range = "last-7-days"
	RangeLast30    Range = "last-30-days"
	RangeThisMonth Range = "this-month"
	RangeLastMonth Range = "last-month"
)

// Ranges lists every named range in presentation order.
var Ranges = []Range{RangeAll, RangeLast7, RangeLast30, RangeThisMonth, RangeLastMonth}

// ParseRange validates a range label.
func ParseRange(s string) (Range, error) {
	for _, r := range Ranges {
		if s == string(r) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown range %q (want one of all, last-7-days, last-30-days, this-month, last-month)", s)
}

// Bounds returns the half-open [start, end) window for the range anchored at
// now. ok is false for RangeAll, which has no bounds.
func (r Range) Bounds(now time.Time) (start, end time.Time, ok bool) {
	switch r {
	case RangeLast7:
		return now.AddDate(0, 0, -7), now, true
	case RangeLast30:
		return now.AddDate(0, 0, -30), now, true
	case RangeThisMonth:
		return startOfMonth(now), now, true
	case RangeLastMonth:
		return startOfMonth(now).AddDate(0, -1, 0), startOfMonth(now), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// PreviousBounds returns the equal-length window immediately preceding the
// current one. Calendar-month ranges step back one true calendar month, so
// the previous window's day count varies with month length.
func (r Range) PreviousBounds(now time.Time) (start, end time.Time, ok bool) {
	switch r {
	case RangeLast7:
		return now.AddDate(0, 0, -14), now.AddDate(0, 0, -7), true
	case RangeLast30:
		return now.AddDate(0, 0, -60), now.AddDate(0, 0, -30), true
	case RangeThisMonth:
		return startOfMonth(now).AddDate(0, -1, 0), startOfMonth(now), true
	case RangeLastMonth:
		return startOfMonth(now).AddDate(0, -2, 0), startOfMonth(now).AddDate(0, -1, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// FilterByRange returns the tickets whose creation instant falls inside the
// range anchored at now. RangeAll returns the input unchanged.
func FilterByRange(tickets []ticket.Ticket, r Range, now time.Time) []ticket.Ticket {
	start, end, ok := r.Bounds(now)
	if !ok {
		return tickets
	}
	return filterWindow(tickets, start, end)
}

// PreviousPeriod returns the tickets created in the comparable period before
// the current window. For RangeAll there is no meaningful prior period and
// the result is empty.
func PreviousPeriod(tickets []ticket.Ticket, r Range, now time.Time) []ticket.Ticket {
	start, end, ok := r.PreviousBounds(now)
	if !ok {
		return nil
	}
	return filterWindow(tickets, start, end)
}

func filterWindow(tickets []ticket.Ticket, start, end time.Time) []ticket.Ticket {
	filtered := make([]ticket.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if !t.CreatedAt.Before(start) && t.CreatedAt.Before(end) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
