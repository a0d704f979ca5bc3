package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for a test and returns a cleanup
// function restoring the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		var err error
		if value == "" {
			err = os.Unsetenv(name)
		} else {
			err = os.Setenv(name, value)
		}
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies every default when no environment variables are
// set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKRANK_SERVER_PORT":                  "",
		"TASKRANK_SERVER_LOG_LEVEL":             "",
		"TASKRANK_ANALYZER_MAX_ESTIMATED_HOURS": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.True(t, cfg.Analyzer.AllowPastDates)
	assert.True(t, cfg.Analyzer.CheckCircularDependencies)
	assert.Equal(t, 5, cfg.Analyzer.DefaultImportance)
	assert.Equal(t, 1, cfg.Analyzer.DefaultEstimatedHours)
	assert.Equal(t, 100, cfg.Analyzer.MaxEstimatedHours)
	assert.Equal(t, 1.0, cfg.Scoring.UrgencyWeight)
	assert.Equal(t, 1.0, cfg.Scoring.ImportanceWeight)
	assert.Equal(t, 1.0, cfg.Scoring.EffortWeight)
	assert.Contains(t, cfg.Calendar.Holidays, "2025-12-25")
}

// TestLoadFromEnv verifies that environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKRANK_SERVER_PORT":                  "9090",
		"TASKRANK_SERVER_LOG_LEVEL":             "debug",
		"TASKRANK_ANALYZER_ALLOW_PAST_DATES":    "false",
		"TASKRANK_ANALYZER_MAX_ESTIMATED_HOURS": "40",
		"TASKRANK_SCORING_URGENCY_WEIGHT":       "2.5",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.False(t, cfg.Analyzer.AllowPastDates)
	assert.Equal(t, 40, cfg.Analyzer.MaxEstimatedHours)
	assert.Equal(t, 2.5, cfg.Scoring.UrgencyWeight)
}

// TestLoadRejectsInvalidValues verifies that struct validation catches bad
// settings instead of letting them reach the engine.
func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "port out of range",
			envVars: map[string]string{"TASKRANK_SERVER_PORT": "70000"},
		},
		{
			name:    "unknown log level",
			envVars: map[string]string{"TASKRANK_SERVER_LOG_LEVEL": "verbose"},
		},
		{
			name:    "default importance out of range",
			envVars: map[string]string{"TASKRANK_ANALYZER_DEFAULT_IMPORTANCE": "11"},
		},
		{
			name:    "negative max hours",
			envVars: map[string]string{"TASKRANK_ANALYZER_MAX_ESTIMATED_HOURS": "-5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()
			assert.Error(t, err, "Load() should reject invalid configuration")
			assert.Nil(t, cfg)
		})
	}
}
