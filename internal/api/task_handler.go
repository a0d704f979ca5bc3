package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskrank-api/internal/api/shared"
	"github.com/phrazzld/taskrank-api/internal/domain"
	"github.com/phrazzld/taskrank-api/internal/domain/rank"
	"github.com/phrazzld/taskrank-api/internal/platform/logger"
	"github.com/phrazzld/taskrank-api/internal/service"
)

// TaskHandler handles task analysis HTTP requests.
type TaskHandler struct {
	analyzer service.AnalyzerService
	logger   *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(analyzer service.AnalyzerService, log *slog.Logger) *TaskHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		analyzer: analyzer,
		logger:   log.With(slog.String("component", "task_handler")),
	}
}

// Analyze handles POST /api/tasks/analyze requests.
// The request body is a JSON array of raw task objects; the optional
// "strategy" query parameter selects the ordering (smart by default).
func (h *TaskHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	rawTasks, ok := h.decodeBatch(w, r)
	if !ok {
		return
	}

	strategy := rank.ParseStrategy(r.URL.Query().Get("strategy"))
	log.Debug("analyzing batch",
		slog.Int("task_count", len(rawTasks)),
		slog.String("strategy", string(strategy)))

	result, err := h.analyzer.Analyze(r.Context(), rawTasks, strategy)
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnalyzeResponse{
		Tasks:      tasksToResponse(result.Tasks),
		HasCycle:   result.Cycle.HasCycle,
		CycleNodes: result.Cycle.CycleNodes,
	})
}

// Suggest handles POST /api/tasks/suggest requests. It always ranks with the
// smart strategy and returns the top three tasks.
func (h *TaskHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	rawTasks, ok := h.decodeBatch(w, r)
	if !ok {
		return
	}

	log.Debug("suggesting from batch", slog.Int("task_count", len(rawTasks)))

	result, err := h.analyzer.Suggest(r.Context(), rawTasks)
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuggestResponse{
		SuggestedTasks: tasksToResponse(result.Tasks),
		HasCycle:       result.Cycle.HasCycle,
		CycleNodes:     result.Cycle.CycleNodes,
		Note:           result.Note,
	})
}

// decodeBatch reads the request body as a JSON array of raw task records.
// On failure it writes the error response and returns ok=false.
func (h *TaskHandler) decodeBatch(w http.ResponseWriter, r *http.Request) ([]domain.RawTask, bool) {
	var rawTasks []domain.RawTask
	if err := json.NewDecoder(r.Body).Decode(&rawTasks); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Request body must be a JSON array of tasks", err)
		return nil, false
	}
	return rawTasks, true
}

// respondEngineError maps an engine failure onto the wire. Validation
// failures carry their field→message map as the details object; anything
// else is sanitized.
func (h *TaskHandler) respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		shared.RespondWithDetailedError(w, r, http.StatusBadRequest,
			"Invalid task data", vErr.Fields)
		return
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
