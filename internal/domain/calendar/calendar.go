// Package calendar provides business-day arithmetic against a fixed,
// configurable holiday set. A business day is any day that is neither a
// weekend day nor a configured holiday.
package calendar

import (
	"time"

	"github.com/phrazzld/taskrank-api/internal/domain"
)

// Calendar answers business-day questions for a fixed holiday set. It is
// immutable after construction and safe for concurrent use.
type Calendar struct {
	holidays map[string]struct{}
}

// New creates a Calendar from a set of holiday dates in domain.DateLayout
// form. Entries that do not parse as dates are ignored; the configuration
// loader validates the format before the calendar is built.
func New(holidays []string) *Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		if _, err := time.Parse(domain.DateLayout, h); err != nil {
			continue
		}
		set[h] = struct{}{}
	}
	return &Calendar{holidays: set}
}

// IsBusinessDay reports whether date falls on a weekday that is not a
// configured holiday.
func (c *Calendar) IsBusinessDay(date time.Time) bool {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, holiday := c.holidays[date.Format(domain.DateLayout)]
	return !holiday
}

// BusinessDaysUntil counts the business days from today (exclusive) to
// dueDate (inclusive). It returns -1 when dueDate is strictly before today
// (an overdue sentinel, not a count) and 0 when the two dates are equal.
func (c *Calendar) BusinessDaysUntil(dueDate, today time.Time) int {
	due := domain.DateOnly(dueDate)
	curr := domain.DateOnly(today)

	if due.Before(curr) {
		return -1
	}

	days := 0
	for curr.Before(due) {
		curr = curr.AddDate(0, 0, 1)
		if c.IsBusinessDay(curr) {
			days++
		}
	}
	return days
}
