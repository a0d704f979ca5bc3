package api

import (
	"github.com/phrazzld/taskrank-api/internal/domain"
)

// TaskResponse represents one task in an API response. The due date is
// rendered back into the YYYY-MM-DD wire format; score and explanation are
// present only when the smart strategy populated them.
type TaskResponse struct {
	Title          string   `json:"title"`
	DueDate        string   `json:"due_date"`
	EstimatedHours int      `json:"estimated_hours"`
	Importance     int      `json:"importance"`
	Dependencies   []string `json:"dependencies"`
	Score          *float64 `json:"score,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
}

// AnalyzeResponse is the body returned by the analyze endpoint: the ordered
// batch plus the cycle report for the same batch.
type AnalyzeResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	HasCycle   bool           `json:"has_cycle"`
	CycleNodes []string       `json:"cycle_nodes"`
}

// SuggestResponse is the body returned by the suggest endpoint.
type SuggestResponse struct {
	SuggestedTasks []TaskResponse `json:"suggested_tasks"`
	HasCycle       bool           `json:"has_cycle"`
	CycleNodes     []string       `json:"cycle_nodes"`
	Note           string         `json:"note"`
}

// taskToResponse transforms a domain task into its response representation.
func taskToResponse(task *domain.Task) TaskResponse {
	deps := task.Dependencies
	if deps == nil {
		deps = []string{}
	}

	return TaskResponse{
		Title:          task.Title,
		DueDate:        task.DueDate.Format(domain.DateLayout),
		EstimatedHours: task.EstimatedHours,
		Importance:     task.Importance,
		Dependencies:   deps,
		Score:          task.Score,
		Explanation:    task.Explanation,
	}
}

// tasksToResponse maps a batch, always yielding a non-nil slice so empty
// batches serialize as [] rather than null.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
