package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/phrazzld/taskrank-api/internal/domain"
)

type analyzeOutput struct {
	Tasks      []*domain.Task `json:"tasks"`
	HasCycle   bool           `json:"has_cycle"`
	CycleNodes []string       `json:"cycle_nodes"`
}

type suggestOutput struct {
	SuggestedTasks []*domain.Task `json:"suggested_tasks"`
	HasCycle       bool           `json:"has_cycle"`
	CycleNodes     []string       `json:"cycle_nodes"`
	Note           string         `json:"note"`
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printCycleWarning(w io.Writer, cycle domain.CycleReport) {
	if !cycle.HasCycle {
		return
	}
	fmt.Fprintln(w, color.YellowString("warning: circular dependency detected: %s",
		strings.Join(cycle.CycleNodes, " -> ")))
}

// printTaskTable renders tasks in ranked order with fixed-width columns.
// Scores and explanations only appear for smart-ranked batches.
func printTaskTable(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "no tasks")
		return
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(w, "%-4s %-30s %-12s %-6s %-5s %-8s\n",
		"#", "TITLE", "DUE", "HOURS", "IMP", "SCORE")

	for i, t := range tasks {
		score := "-"
		if t.Score != nil {
			score = fmt.Sprintf("%.2f", *t.Score)
		}
		fmt.Fprintf(w, "%-4d %-30s %-12s %-6d %-5d %-8s\n",
			i+1, truncate(t.Title, 30), t.DueDate.Format(domain.DateLayout),
			t.EstimatedHours, t.Importance, score)
		if t.Explanation != "" {
			fmt.Fprintf(w, "     %s\n", color.HiBlackString(t.Explanation))
		}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
