package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// requiredFields lists every key a raw task record must carry. Missing keys
// short-circuit validation before any per-field checks run.
var requiredFields = []string{
	"title",
	"due_date",
	"estimated_hours",
	"importance",
	"dependencies",
}

// ValidationRules holds the configurable knobs the validator consults.
// The zero value is not useful; build one from config (DefaultValidationRules
// for tests).
type ValidationRules struct {
	// AllowPastDates permits due dates strictly before today. When false,
	// past dates are rejected with a field error.
	AllowPastDates bool

	// MaxEstimatedHours is the inclusive upper bound for estimated_hours.
	MaxEstimatedHours int
}

// DefaultValidationRules mirrors the default configuration.
func DefaultValidationRules() ValidationRules {
	return ValidationRules{
		AllowPastDates:    true,
		MaxEstimatedHours: 100,
	}
}

// ValidateTask checks a raw task record against required-field, type, and
// range constraints and converts it into a typed Task.
//
// Missing required fields fail immediately with one "Missing field" entry per
// absent key. Once all fields are present, the remaining checks accumulate:
// every failing field appears in the returned ValidationError, not just the
// first. On success the returned Task carries the parsed due date; the raw
// date string is not retained.
//
// Validation is pure: it reads only the record, the rules, and today's date.
func ValidateTask(raw RawTask, rules ValidationRules, today time.Time) (*Task, error) {
	fields := map[string]string{}
	for _, name := range requiredFields {
		if _, ok := raw[name]; !ok {
			fields[name] = "Missing field"
		}
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	task := &Task{}

	title, ok := raw["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		fields["title"] = "Title must be a non-empty string"
	} else {
		task.Title = title
	}

	dueDate, ok := coerceDate(raw["due_date"])
	switch {
	case !ok:
		fields["due_date"] = "Invalid date format. Use YYYY-MM-DD"
	case !rules.AllowPastDates && dueDate.Before(DateOnly(today)):
		fields["due_date"] = "Past due dates are not allowed"
	default:
		task.DueDate = dueDate
	}

	hours, ok := coerceInt(raw["estimated_hours"])
	switch {
	case !ok:
		fields["estimated_hours"] = "Must be an integer"
	case hours <= 0:
		fields["estimated_hours"] = "Must be a positive integer"
	case hours > rules.MaxEstimatedHours:
		fields["estimated_hours"] = "Exceeds allowed max"
	default:
		task.EstimatedHours = hours
	}

	importance, ok := coerceInt(raw["importance"])
	switch {
	case !ok:
		fields["importance"] = "Must be an integer"
	case importance < 1 || importance > 10:
		fields["importance"] = "Must be between 1 and 10"
	default:
		task.Importance = importance
	}

	deps, ok := coerceStringSlice(raw["dependencies"])
	if !ok {
		fields["dependencies"] = "Must be a list of task titles"
	} else {
		task.Dependencies = deps
	}

	if len(fields) > 0 {
		return nil, NewValidationError(fields)
	}
	return task, nil
}

// DateOnly strips any time-of-day component, returning midnight UTC of the
// same calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// coerceDate accepts a DateLayout string or an already-parsed time.Time.
// Accepting time.Time makes re-validation of normalized tasks a no-op.
func coerceDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return DateOnly(d), true
	case string:
		parsed, err := time.Parse(DateLayout, d)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}

// coerceInt converts loosely-typed numeric input into an int. JSON decoding
// yields float64 for all numbers, so integral floats are accepted, as are
// numeric strings.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// coerceStringSlice converts []string or a JSON-decoded []any of strings.
func coerceStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		out := make([]string, len(s))
		copy(out, s)
		return out, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}
