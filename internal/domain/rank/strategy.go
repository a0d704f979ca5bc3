package rank

import (
	"sort"
	"time"

	"github.com/phrazzld/taskrank-api/internal/domain"
	"github.com/phrazzld/taskrank-api/internal/domain/calendar"
)

// Strategy names a total-ordering policy applied to a validated task batch.
type Strategy string

// Supported ranking strategies.
const (
	// StrategyFastest orders ascending by estimated hours.
	StrategyFastest Strategy = "fastest"

	// StrategyHighImpact orders descending by importance.
	StrategyHighImpact Strategy = "high_impact"

	// StrategyDeadline orders ascending by due date.
	StrategyDeadline Strategy = "deadline"

	// StrategySmart scores every task and orders descending by score.
	// It is the default.
	StrategySmart Strategy = "smart"
)

// DefaultSuggestionCount is how many tasks SuggestTop returns by default.
const DefaultSuggestionCount = 3

// ParseStrategy maps a strategy name to a Strategy. Unrecognized names fall
// back to StrategySmart rather than failing, matching the engine's default.
func ParseStrategy(name string) Strategy {
	switch Strategy(name) {
	case StrategyFastest, StrategyHighImpact, StrategyDeadline, StrategySmart:
		return Strategy(name)
	default:
		return StrategySmart
	}
}

// Ranker orders task batches under a selectable strategy, delegating the
// smart strategy's scoring to the calendar-aware weighted scorer. It is
// immutable after construction and safe for concurrent use.
type Ranker struct {
	calendar *calendar.Calendar
	params   *Params
}

// NewRanker creates a Ranker from a business-day calendar and scoring
// weights.
func NewRanker(cal *calendar.Calendar, params *Params) *Ranker {
	return &Ranker{
		calendar: cal,
		params:   params,
	}
}

// Score computes the weighted priority score and explanation for a single
// task as of today.
func (r *Ranker) Score(task *domain.Task, today time.Time) (float64, string) {
	return score(task, today, r.calendar, r.params)
}

// Rank returns the batch ordered under the given strategy. The returned
// slice is a fresh ordering; the input slice is left untouched. All sorts
// are stable, so tasks with equal sort keys keep their relative input order.
//
// Under StrategySmart every task gets its Score and Explanation fields
// populated before sorting; the other strategies leave them unset.
func (r *Ranker) Rank(tasks []*domain.Task, strategy Strategy, today time.Time) []*domain.Task {
	ordered := make([]*domain.Task, len(tasks))
	copy(ordered, tasks)

	switch strategy {
	case StrategyFastest:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].EstimatedHours < ordered[j].EstimatedHours
		})
	case StrategyHighImpact:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Importance > ordered[j].Importance
		})
	case StrategyDeadline:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].DueDate.Before(ordered[j].DueDate)
		})
	default:
		for _, task := range ordered {
			value, explanation := r.Score(task, today)
			task.Score = &value
			task.Explanation = explanation
		}
		sort.SliceStable(ordered, func(i, j int) bool {
			return *ordered[i].Score > *ordered[j].Score
		})
	}

	return ordered
}

// SuggestTop ranks the batch under the smart strategy and returns the first
// n entries (all of them when the batch is smaller). Pass n <= 0 for
// DefaultSuggestionCount.
func (r *Ranker) SuggestTop(tasks []*domain.Task, today time.Time, n int) []*domain.Task {
	if n <= 0 {
		n = DefaultSuggestionCount
	}

	ranked := r.Rank(tasks, StrategySmart, today)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
