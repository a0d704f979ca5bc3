// Package rank computes weighted priority scores for tasks and orders task
// batches under interchangeable ranking strategies.
package rank

import (
	"fmt"
	"math"
	"time"

	"github.com/phrazzld/taskrank-api/internal/domain"
	"github.com/phrazzld/taskrank-api/internal/domain/calendar"
)

// urgencyFromDaysLeft maps business-days-remaining to an urgency value on a
// 0-10 scale. Urgency saturates at 10 for overdue tasks and decays over
// fixed thresholds for farther-out due dates; the thresholds are canonical,
// not configurable.
func urgencyFromDaysLeft(daysLeft int) int {
	switch {
	case daysLeft < 0:
		return 10 // overdue
	case daysLeft == 0:
		return 9 // due today
	case daysLeft == 1:
		return 8
	case daysLeft <= 3:
		return 7
	case daysLeft <= 7:
		return 5
	default:
		return 2
	}
}

// effortPenalty computes the score divisor for a task's estimated effort.
// Effort only discounts the score once the weighted hours exceed roughly 10;
// below that the floor of 1 applies and effort has no effect.
func effortPenalty(estimatedHours int, weight float64) float64 {
	return math.Max(1, float64(estimatedHours)*weight/10)
}

// score computes the weighted priority score for one task plus its
// human-readable explanation. Pure given today, the calendar, and params.
func score(
	task *domain.Task,
	today time.Time,
	cal *calendar.Calendar,
	params *Params,
) (float64, string) {
	daysLeft := cal.BusinessDaysUntil(task.DueDate, today)
	urgency := urgencyFromDaysLeft(daysLeft)
	importance := task.Importance

	weighted := float64(urgency)*params.UrgencyWeight + float64(importance)*params.ImportanceWeight
	value := weighted / effortPenalty(task.EstimatedHours, params.EffortWeight)

	explanation := fmt.Sprintf(
		"Urgency=%d, Importance=%d, Effort=%d",
		urgency, importance, task.EstimatedHours,
	)

	return math.Round(value*100) / 100, explanation
}
