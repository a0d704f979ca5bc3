package rank

// Params defines the configurable weights for the weighted scoring formula.
// All weights default to 1.0, which reproduces the unweighted behavior.
type Params struct {
	// UrgencyWeight scales the urgency term of the score.
	UrgencyWeight float64

	// ImportanceWeight scales the importance term of the score.
	ImportanceWeight float64

	// EffortWeight scales the effort-penalty divisor. Values above 1.0
	// discount long tasks more aggressively; the penalty floor of 1 still
	// applies.
	EffortWeight float64
}

// ParamsConfig allows overriding the default weights when creating a new
// Params instance. Zero values leave the corresponding default untouched.
type ParamsConfig struct {
	UrgencyWeight    float64
	ImportanceWeight float64
	EffortWeight     float64
}

// NewDefaultParams creates a new Params instance with default weights.
func NewDefaultParams() *Params {
	return &Params{
		UrgencyWeight:    1.0,
		ImportanceWeight: 1.0,
		EffortWeight:     1.0,
	}
}

// NewParams creates a new Params instance with custom weights.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.UrgencyWeight > 0 {
		params.UrgencyWeight = config.UrgencyWeight
	}
	if config.ImportanceWeight > 0 {
		params.ImportanceWeight = config.ImportanceWeight
	}
	if config.EffortWeight > 0 {
		params.EffortWeight = config.EffortWeight
	}

	return params
}
