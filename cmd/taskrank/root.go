package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phrazzld/taskrank-api/internal/config"
	"github.com/phrazzld/taskrank-api/internal/domain/calendar"
	"github.com/phrazzld/taskrank-api/internal/domain/rank"
	"github.com/phrazzld/taskrank-api/internal/service"
)

var (
	outputJSON   bool
	fillDefaults bool
)

var rootCmd = &cobra.Command{
	Use:   "taskrank",
	Short: "Rank a batch of tasks by urgency, importance and effort",
	Long: `taskrank runs the task-prioritization engine over a JSON file of tasks.

It validates each task, detects circular dependency chains, and orders the
batch under a selectable strategy. Configuration (holidays, scoring weights,
validation limits) is read from config.yaml and TASKRANK_ environment
variables, the same way the server reads it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print results as JSON instead of a table")
	rootCmd.PersistentFlags().BoolVar(&fillDefaults, "fill-defaults", false,
		"fill missing importance/estimated_hours fields with configured defaults before validation")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(suggestCmd)
}

// buildAnalyzer loads configuration and assembles the engine the same way
// the server does. CLI logs go to stderr at warn level so they never mix
// with result output on stdout.
func buildAnalyzer(logWriter io.Writer) (service.AnalyzerService, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cal := calendar.New(cfg.Calendar.Holidays)
	params := rank.NewParams(rank.ParamsConfig{
		UrgencyWeight:    cfg.Scoring.UrgencyWeight,
		ImportanceWeight: cfg.Scoring.ImportanceWeight,
		EffortWeight:     cfg.Scoring.EffortWeight,
	})

	analyzer, err := service.NewAnalyzerService(cfg.Analyzer, rank.NewRanker(cal, params), log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create analyzer service: %w", err)
	}

	return analyzer, cfg, nil
}
