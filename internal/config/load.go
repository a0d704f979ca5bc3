package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by Load, e.g.
// TASKRANK_SERVER_PORT maps onto server.port.
const envPrefix = "TASKRANK"

// defaultHolidays is the built-in holiday set used when the configuration
// provides none.
var defaultHolidays = []string{
	"2025-01-26",
	"2025-08-15",
	"2025-10-02",
	"2025-12-25",
}

// Load reads configuration from an optional config.yaml in the working
// directory and from TASKRANK_-prefixed environment variables, with
// environment variables taking precedence. The result is validated before it
// is returned; a config that fails validation never reaches the caller.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has a default or an
		// environment override. Any other read error is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers a default for every known key so that AutomaticEnv
// can bind the corresponding environment variables.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("analyzer.allow_past_dates", true)
	v.SetDefault("analyzer.check_circular_dependencies", true)
	v.SetDefault("analyzer.default_importance", 5)
	v.SetDefault("analyzer.default_estimated_hours", 1)
	v.SetDefault("analyzer.max_estimated_hours", 100)

	v.SetDefault("scoring.urgency_weight", 1.0)
	v.SetDefault("scoring.importance_weight", 1.0)
	v.SetDefault("scoring.effort_weight", 1.0)

	v.SetDefault("calendar.holidays", defaultHolidays)
}
