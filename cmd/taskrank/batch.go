package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phrazzld/taskrank-api/internal/config"
	"github.com/phrazzld/taskrank-api/internal/domain"
)

// loadBatch reads a JSON array of raw task records from a file.
func loadBatch(path string) ([]domain.RawTask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks file: %w", err)
	}

	var batch []domain.RawTask
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("tasks file must contain a JSON array of tasks: %w", err)
	}
	return batch, nil
}

// applyDefaults fills absent importance and estimated_hours fields with the
// configured defaults. This is caller-side policy: the engine itself always
// requires both fields, so the filling happens before the batch crosses the
// validation boundary.
func applyDefaults(batch []domain.RawTask, cfg config.AnalyzerConfig) {
	for _, raw := range batch {
		if _, ok := raw["importance"]; !ok {
			raw["importance"] = cfg.DefaultImportance
		}
		if _, ok := raw["estimated_hours"]; !ok {
			raw["estimated_hours"] = cfg.DefaultEstimatedHours
		}
		if _, ok := raw["dependencies"]; !ok {
			raw["dependencies"] = []string{}
		}
	}
}
