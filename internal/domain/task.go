package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for due dates. Dates carry no time-of-day
// component; the parsed time.Time is always midnight UTC.
const DateLayout = "2006-01-02"

// RawTask is an untyped task record as received at the boundary (JSON object,
// CLI input file, etc.). The validator is the single conversion point from
// RawTask into a typed Task; a Task never flows back into this loose form.
type RawTask map[string]any

// Task represents a single validated task within a batch.
//
// A Task is immutable once validated, except for the Score and Explanation
// fields which the smart ranking strategy attaches. Score is a pointer so
// that tasks ordered by the non-scoring strategies serialize without a
// score field at all.
type Task struct {
	Title          string     `json:"title"`
	DueDate        time.Time  `json:"due_date"`
	EstimatedHours int        `json:"estimated_hours"`
	Importance     int        `json:"importance"`
	Dependencies   []string   `json:"dependencies"`
	Score          *float64   `json:"score,omitempty"`
	Explanation    string     `json:"explanation,omitempty"`
}

// Raw converts the task back into the boundary representation, with the due
// date rendered in DateLayout. It exists for callers that need to re-enter
// the validation path (e.g. idempotence tests and the CLI default-filling
// flow); the strongly-typed Task itself never escapes as a RawTask.
func (t *Task) Raw() RawTask {
	deps := make([]string, len(t.Dependencies))
	copy(deps, t.Dependencies)

	return RawTask{
		"title":           t.Title,
		"due_date":        t.DueDate.Format(DateLayout),
		"estimated_hours": t.EstimatedHours,
		"importance":      t.Importance,
		"dependencies":    deps,
	}
}

// String returns a short human-readable description, primarily for logs.
func (t *Task) String() string {
	return fmt.Sprintf("%s (due %s)", t.Title, t.DueDate.Format(DateLayout))
}

// CycleReport describes the outcome of dependency-cycle detection over a
// batch. When HasCycle is true, CycleNodes holds one witness path in
// root-to-repeat order with the closing node repeated at both ends
// (e.g. [A B C A]). When no cycle exists, CycleNodes is empty.
type CycleReport struct {
	HasCycle   bool     `json:"has_cycle"`
	CycleNodes []string `json:"cycle_nodes"`
}
