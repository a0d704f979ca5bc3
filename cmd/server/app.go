package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskrank-api/internal/config"
	"github.com/phrazzld/taskrank-api/internal/domain/calendar"
	"github.com/phrazzld/taskrank-api/internal/domain/rank"
	"github.com/phrazzld/taskrank-api/internal/platform/logger"
	"github.com/phrazzld/taskrank-api/internal/service"
)

// application holds all the shared application dependencies to simplify
// management and wiring.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger   *slog.Logger
	analyzer service.AnalyzerService
}

// initializeApp loads configuration and sets up application components.
// Returns the assembled application or any initialization error.
func initializeApp() (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"holiday_count", len(cfg.Calendar.Holidays),
		"allow_past_dates", cfg.Analyzer.AllowPastDates)

	return newApplication(cfg, appLogger)
}

// newApplication creates a new application instance with all dependencies
// initialized from the given configuration.
func newApplication(cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: appLogger,
	}

	// Build the business-day calendar and scoring weights from config
	cal := calendar.New(cfg.Calendar.Holidays)
	params := rank.NewParams(rank.ParamsConfig{
		UrgencyWeight:    cfg.Scoring.UrgencyWeight,
		ImportanceWeight: cfg.Scoring.ImportanceWeight,
		EffortWeight:     cfg.Scoring.EffortWeight,
	})
	ranker := rank.NewRanker(cal, params)

	// Initialize the analyzer service
	var err error
	app.analyzer, err = service.NewAnalyzerService(cfg.Analyzer, ranker, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer service: %w", err)
	}
	appLogger.Info("analyzer service initialized",
		"max_estimated_hours", cfg.Analyzer.MaxEstimatedHours,
		"check_circular_dependencies", cfg.Analyzer.CheckCircularDependencies)

	return app, nil
}
