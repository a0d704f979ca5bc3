package calendar

import (
	"testing"
	"time"
)

// date is a test helper for building midnight-UTC dates.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDay(t *testing.T) {
	t.Parallel()
	cal := New([]string{"2025-12-25"})

	testCases := []struct {
		name     string
		day      time.Time
		expected bool
	}{
		{
			name:     "ordinary weekday",
			day:      date(2025, time.June, 4), // Wednesday
			expected: true,
		},
		{
			name:     "Saturday",
			day:      date(2025, time.June, 7),
			expected: false,
		},
		{
			name:     "Sunday",
			day:      date(2025, time.June, 8),
			expected: false,
		},
		{
			name:     "configured holiday on a weekday",
			day:      date(2025, time.December, 25), // Thursday
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.IsBusinessDay(tc.day); got != tc.expected {
				t.Errorf("IsBusinessDay(%s) = %v, want %v", tc.day.Format("2006-01-02"), got, tc.expected)
			}
		})
	}
}

func TestBusinessDaysUntil(t *testing.T) {
	t.Parallel()
	cal := New([]string{"2025-12-25"})

	testCases := []struct {
		name     string
		due      time.Time
		today    time.Time
		expected int
	}{
		{
			name:     "same day is zero",
			due:      date(2025, time.June, 4),
			today:    date(2025, time.June, 4),
			expected: 0,
		},
		{
			name:     "overdue returns sentinel",
			due:      date(2025, time.June, 3),
			today:    date(2025, time.June, 4),
			expected: -1,
		},
		{
			name:     "next business day",
			due:      date(2025, time.June, 5), // Thursday
			today:    date(2025, time.June, 4),
			expected: 1,
		},
		{
			name:     "weekend in between is skipped",
			due:      date(2025, time.June, 9), // Monday
			today:    date(2025, time.June, 6), // Friday
			expected: 1,
		},
		{
			name:     "due on a Saturday counts only weekdays",
			due:      date(2025, time.June, 7), // Saturday
			today:    date(2025, time.June, 5), // Thursday
			expected: 1,                        // only Friday counts
		},
		{
			name:     "holiday in between is skipped",
			due:      date(2025, time.December, 26), // Friday
			today:    date(2025, time.December, 24), // Wednesday
			expected: 1,                             // Dec 25 is a holiday
		},
		{
			name:     "full week spans five business days",
			due:      date(2025, time.June, 11),
			today:    date(2025, time.June, 4),
			expected: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.BusinessDaysUntil(tc.due, tc.today); got != tc.expected {
				t.Errorf("BusinessDaysUntil(%s, %s) = %d, want %d",
					tc.due.Format("2006-01-02"), tc.today.Format("2006-01-02"), got, tc.expected)
			}
		})
	}
}

func TestBusinessDaysUntilIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()
	cal := New(nil)

	due := time.Date(2025, time.June, 5, 23, 30, 0, 0, time.UTC)
	today := time.Date(2025, time.June, 4, 8, 15, 0, 0, time.UTC)

	if got := cal.BusinessDaysUntil(due, today); got != 1 {
		t.Errorf("expected time-of-day to be ignored, got %d business days", got)
	}
}
