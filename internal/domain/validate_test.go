package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)

// validRaw returns a fresh raw record that passes every check.
func validRaw() RawTask {
	return RawTask{
		"title":           "Write report",
		"due_date":        "2025-06-10",
		"estimated_hours": 4,
		"importance":      7,
		"dependencies":    []string{"Collect data"},
	}
}

func TestValidateTaskSuccess(t *testing.T) {
	t.Parallel()

	task, err := ValidateTask(validRaw(), DefaultValidationRules(), testToday)
	require.NoError(t, err)

	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), task.DueDate)
	assert.Equal(t, 4, task.EstimatedHours)
	assert.Equal(t, 7, task.Importance)
	assert.Equal(t, []string{"Collect data"}, task.Dependencies)
	assert.Nil(t, task.Score)
	assert.Empty(t, task.Explanation)
}

func TestValidateTaskMissingFieldsShortCircuit(t *testing.T) {
	t.Parallel()

	// importance is missing AND due_date is malformed; only the missing
	// field may be reported because missing-field failures short-circuit.
	raw := RawTask{
		"title":           "X",
		"due_date":        "not-a-date",
		"estimated_hours": 3,
		"dependencies":    []string{},
	}

	_, err := ValidateTask(raw, DefaultValidationRules(), testToday)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"importance": "Missing field"}, vErr.Fields)
}

func TestValidateTaskAllFieldsMissing(t *testing.T) {
	t.Parallel()

	_, err := ValidateTask(RawTask{}, DefaultValidationRules(), testToday)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 5)
	for _, field := range []string{"title", "due_date", "estimated_hours", "importance", "dependencies"} {
		assert.Equal(t, "Missing field", vErr.Fields[field])
	}
}

func TestValidateTaskFieldErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(RawTask)
		field    string
		expected string
	}{
		{
			name:     "empty title",
			mutate:   func(r RawTask) { r["title"] = "   " },
			field:    "title",
			expected: "Title must be a non-empty string",
		},
		{
			name:     "non-string title",
			mutate:   func(r RawTask) { r["title"] = 42 },
			field:    "title",
			expected: "Title must be a non-empty string",
		},
		{
			name:     "malformed date",
			mutate:   func(r RawTask) { r["due_date"] = "06/10/2025" },
			field:    "due_date",
			expected: "Invalid date format. Use YYYY-MM-DD",
		},
		{
			name:     "zero hours",
			mutate:   func(r RawTask) { r["estimated_hours"] = 0 },
			field:    "estimated_hours",
			expected: "Must be a positive integer",
		},
		{
			name:     "negative hours",
			mutate:   func(r RawTask) { r["estimated_hours"] = -2 },
			field:    "estimated_hours",
			expected: "Must be a positive integer",
		},
		{
			name:     "hours above the configured maximum",
			mutate:   func(r RawTask) { r["estimated_hours"] = 101 },
			field:    "estimated_hours",
			expected: "Exceeds allowed max",
		},
		{
			name:     "fractional hours",
			mutate:   func(r RawTask) { r["estimated_hours"] = 2.5 },
			field:    "estimated_hours",
			expected: "Must be an integer",
		},
		{
			name:     "non-numeric hours",
			mutate:   func(r RawTask) { r["estimated_hours"] = "lots" },
			field:    "estimated_hours",
			expected: "Must be an integer",
		},
		{
			name:     "importance below range",
			mutate:   func(r RawTask) { r["importance"] = 0 },
			field:    "importance",
			expected: "Must be between 1 and 10",
		},
		{
			name:     "importance above range",
			mutate:   func(r RawTask) { r["importance"] = 11 },
			field:    "importance",
			expected: "Must be between 1 and 10",
		},
		{
			name:     "non-integer importance",
			mutate:   func(r RawTask) { r["importance"] = []string{} },
			field:    "importance",
			expected: "Must be an integer",
		},
		{
			name:     "dependencies of the wrong type",
			mutate:   func(r RawTask) { r["dependencies"] = "Collect data" },
			field:    "dependencies",
			expected: "Must be a list of task titles",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validRaw()
			tc.mutate(raw)

			_, err := ValidateTask(raw, DefaultValidationRules(), testToday)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, map[string]string{tc.field: tc.expected}, vErr.Fields)
		})
	}
}

// TestValidateTaskAccumulatesErrors checks that once all fields are present,
// every failing field is reported, not just the first.
func TestValidateTaskAccumulatesErrors(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw["title"] = ""
	raw["estimated_hours"] = 0
	raw["importance"] = 99

	_, err := ValidateTask(raw, DefaultValidationRules(), testToday)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{
		"title":           "Title must be a non-empty string",
		"estimated_hours": "Must be a positive integer",
		"importance":      "Must be between 1 and 10",
	}, vErr.Fields)
}

func TestValidateTaskPastDates(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw["due_date"] = "2025-06-01"

	// Allowed by default.
	task, err := ValidateTask(raw, DefaultValidationRules(), testToday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), task.DueDate)

	// Rejected when the flag is off.
	strict := ValidationRules{AllowPastDates: false, MaxEstimatedHours: 100}
	_, err = ValidateTask(raw, strict, testToday)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"due_date": "Past due dates are not allowed"}, vErr.Fields)

	// Today itself is never "past".
	raw["due_date"] = "2025-06-04"
	_, err = ValidateTask(raw, strict, testToday)
	assert.NoError(t, err)
}

func TestValidateTaskCoercesJSONNumbers(t *testing.T) {
	t.Parallel()

	// encoding/json decodes every number as float64.
	raw := validRaw()
	raw["estimated_hours"] = float64(4)
	raw["importance"] = float64(7)
	raw["dependencies"] = []any{"Collect data"}

	task, err := ValidateTask(raw, DefaultValidationRules(), testToday)
	require.NoError(t, err)
	assert.Equal(t, 4, task.EstimatedHours)
	assert.Equal(t, 7, task.Importance)
	assert.Equal(t, []string{"Collect data"}, task.Dependencies)
}

func TestValidateTaskCoercesNumericStrings(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw["estimated_hours"] = "4"
	raw["importance"] = "7"

	task, err := ValidateTask(raw, DefaultValidationRules(), testToday)
	require.NoError(t, err)
	assert.Equal(t, 4, task.EstimatedHours)
	assert.Equal(t, 7, task.Importance)
}

// TestValidateTaskIdempotent re-validates an already-normalized task and
// expects an equal result.
func TestValidateTaskIdempotent(t *testing.T) {
	t.Parallel()

	first, err := ValidateTask(validRaw(), DefaultValidationRules(), testToday)
	require.NoError(t, err)

	second, err := ValidateTask(first.Raw(), DefaultValidationRules(), testToday)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	_, err := ValidateTask(RawTask{}, DefaultValidationRules(), testToday)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestValidationErrorMessageDeterministic(t *testing.T) {
	t.Parallel()

	err := NewValidationError(map[string]string{
		"importance": "Missing field",
		"due_date":   "Missing field",
	})
	assert.Equal(t, "invalid task data: due_date: Missing field; importance: Missing field", err.Error())
}
