package config

// Config holds all application configuration. It is loaded once at process
// start and treated as immutable afterwards; components receive the pieces
// they need by injection, never through a global.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer" validate:"required"`
	Scoring  ScoringConfig  `mapstructure:"scoring"  validate:"required"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AnalyzerConfig contains validation and analysis behavior settings.
type AnalyzerConfig struct {
	// AllowPastDates permits tasks whose due date already passed.
	AllowPastDates bool `mapstructure:"allow_past_dates"`

	// CheckCircularDependencies is advisory: cycle detection always runs
	// and is always reported, regardless of this flag.
	CheckCircularDependencies bool `mapstructure:"check_circular_dependencies"`

	// DefaultImportance and DefaultEstimatedHours are caller-side defaults
	// for absent fields (used by the CLI's fill-defaults mode). The engine
	// itself always requires both fields.
	DefaultImportance     int `mapstructure:"default_importance"      validate:"required,gte=1,lte=10"`
	DefaultEstimatedHours int `mapstructure:"default_estimated_hours" validate:"required,gte=1"`

	// MaxEstimatedHours is the inclusive upper bound for a task's
	// estimated_hours.
	MaxEstimatedHours int `mapstructure:"max_estimated_hours" validate:"required,gte=1"`
}

// ScoringConfig contains the weights of the smart-strategy scoring formula.
type ScoringConfig struct {
	UrgencyWeight    float64 `mapstructure:"urgency_weight"    validate:"required,gt=0"`
	ImportanceWeight float64 `mapstructure:"importance_weight" validate:"required,gt=0"`
	EffortWeight     float64 `mapstructure:"effort_weight"     validate:"required,gt=0"`
}

// CalendarConfig contains the static business-calendar settings.
type CalendarConfig struct {
	// Holidays is the fixed holiday set, one YYYY-MM-DD entry per date.
	Holidays []string `mapstructure:"holidays" validate:"dive,datetime=2006-01-02"`
}
