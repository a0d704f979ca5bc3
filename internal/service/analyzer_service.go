package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskrank-api/internal/config"
	"github.com/phrazzld/taskrank-api/internal/domain"
	"github.com/phrazzld/taskrank-api/internal/domain/depgraph"
	"github.com/phrazzld/taskrank-api/internal/domain/rank"
	"github.com/phrazzld/taskrank-api/internal/platform/logger"
)

// suggestionNote accompanies every suggestion response.
const suggestionNote = "Top 3 tasks using Smart Balance scoring."

// AnalysisResult is the outcome of analyzing one task batch: the ordered
// tasks plus the cycle report for the same batch. A cycle never blocks
// ranking; it is surfaced as data alongside the ordering.
type AnalysisResult struct {
	Tasks []*domain.Task
	Cycle domain.CycleReport
}

// SuggestionResult is the outcome of a suggestion request: the top-ranked
// tasks under the smart strategy, the cycle report, and a descriptive note.
type SuggestionResult struct {
	Tasks []*domain.Task
	Cycle domain.CycleReport
	Note  string
}

// AnalyzerService runs the task-prioritization engine over raw task batches.
type AnalyzerService interface {
	// Analyze validates the batch, detects dependency cycles, and orders the
	// tasks under the given strategy. The first invalid task aborts the whole
	// batch with its ValidationError.
	Analyze(ctx context.Context, rawTasks []domain.RawTask, strategy rank.Strategy) (*AnalysisResult, error)

	// Suggest ranks the batch under the smart strategy and returns the top
	// three tasks plus the cycle report.
	Suggest(ctx context.Context, rawTasks []domain.RawTask) (*SuggestionResult, error)
}

// analyzerService is the standard implementation of AnalyzerService. Every
// invocation is a pure in-memory computation over the supplied batch; the
// service holds only immutable configuration and is safe for concurrent use.
type analyzerService struct {
	ranker      *rank.Ranker
	rules       domain.ValidationRules
	checkCycles bool
	logger      *slog.Logger
	now         func() time.Time
}

// NewAnalyzerService creates an AnalyzerService from analyzer configuration
// and a ranker. Returns an error if a required dependency is missing.
func NewAnalyzerService(
	cfg config.AnalyzerConfig,
	ranker *rank.Ranker,
	log *slog.Logger,
) (AnalyzerService, error) {
	return NewAnalyzerServiceWithClock(cfg, ranker, log, time.Now)
}

// NewAnalyzerServiceWithClock is NewAnalyzerService with an injectable clock
// for deterministic tests.
func NewAnalyzerServiceWithClock(
	cfg config.AnalyzerConfig,
	ranker *rank.Ranker,
	log *slog.Logger,
	now func() time.Time,
) (AnalyzerService, error) {
	if ranker == nil {
		return nil, errors.New("ranker cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if now == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &analyzerService{
		ranker: ranker,
		rules: domain.ValidationRules{
			AllowPastDates:    cfg.AllowPastDates,
			MaxEstimatedHours: cfg.MaxEstimatedHours,
		},
		checkCycles: cfg.CheckCircularDependencies,
		logger:      log.With(slog.String("component", "analyzer_service")),
		now:         now,
	}, nil
}

// Analyze implements AnalyzerService.
func (s *analyzerService) Analyze(
	ctx context.Context,
	rawTasks []domain.RawTask,
	strategy rank.Strategy,
) (*AnalysisResult, error) {
	log := s.batchLogger(ctx)
	today := domain.DateOnly(s.now())

	validated, err := s.validateBatch(rawTasks, today, log)
	if err != nil {
		return nil, err
	}

	cycle := s.detectCycle(validated, log)
	ordered := s.ranker.Rank(validated, strategy, today)

	log.Info("batch analyzed",
		slog.String("strategy", string(strategy)),
		slog.Int("task_count", len(ordered)),
		slog.Bool("has_cycle", cycle.HasCycle))

	return &AnalysisResult{Tasks: ordered, Cycle: cycle}, nil
}

// Suggest implements AnalyzerService.
func (s *analyzerService) Suggest(
	ctx context.Context,
	rawTasks []domain.RawTask,
) (*SuggestionResult, error) {
	log := s.batchLogger(ctx)
	today := domain.DateOnly(s.now())

	validated, err := s.validateBatch(rawTasks, today, log)
	if err != nil {
		return nil, err
	}

	cycle := s.detectCycle(validated, log)
	suggested := s.ranker.SuggestTop(validated, today, rank.DefaultSuggestionCount)

	log.Info("batch suggested",
		slog.Int("task_count", len(rawTasks)),
		slog.Int("suggested_count", len(suggested)),
		slog.Bool("has_cycle", cycle.HasCycle))

	return &SuggestionResult{Tasks: suggested, Cycle: cycle, Note: suggestionNote}, nil
}

// batchLogger derives a per-invocation logger carrying a fresh batch ID.
func (s *analyzerService) batchLogger(ctx context.Context) *slog.Logger {
	log := logger.FromContextOrDefault(ctx, s.logger)
	return log.With(slog.String("batch_id", uuid.New().String()))
}

// validateBatch converts every raw record into a typed Task. The first
// failing record aborts the batch. The immediate-fail policy lives here,
// not in the validator, which judges each record independently.
func (s *analyzerService) validateBatch(
	rawTasks []domain.RawTask,
	today time.Time,
	log *slog.Logger,
) ([]*domain.Task, error) {
	validated := make([]*domain.Task, 0, len(rawTasks))
	for i, raw := range rawTasks {
		task, err := domain.ValidateTask(raw, s.rules, today)
		if err != nil {
			log.Debug("task failed validation",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("task at index %d: %w", i, err)
		}
		validated = append(validated, task)
	}
	return validated, nil
}

// detectCycle always runs detection; the configured flag is advisory only
// and merely lowers the log noise when disabled.
func (s *analyzerService) detectCycle(tasks []*domain.Task, log *slog.Logger) domain.CycleReport {
	cycle := depgraph.Detect(tasks)
	if cycle.HasCycle {
		if s.checkCycles {
			log.Warn("circular dependency detected",
				slog.Any("cycle_nodes", cycle.CycleNodes))
		} else {
			log.Debug("circular dependency detected (check disabled, still reported)",
				slog.Any("cycle_nodes", cycle.CycleNodes))
		}
	}
	return cycle
}
