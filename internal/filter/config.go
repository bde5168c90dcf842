package filter

// Defaults carries the system-wide values a Config starts from.
type Defaults struct {
	PostalCode int
}

// Config is the fully resolved set of filter thresholds for one command
// invocation. It is built once via NewConfig and not mutated afterwards.
type Config struct {
	PostalCode         int
	Count              int
	MaxOrderValue      float64
	MaxDuration        int
	MinimumRatingScore float64
	MinimumRatingVotes int
	CitiesToIgnore     []string
	IsOpenInMinutes    int
	CuisinesToInclude  []string
	CuisinesToExclude  []string
	AllowPickup        bool
}

const frankfurtCity = "frankfurt"

// NewConfig parses the command tokens and merges them over the default
// thresholds. Either the whole override set applies or a ValidationError is
// returned; no partial application.
//
// When the resolved postal code equals the configured default, "frankfurt" is
// appended to the ignored cities. That is a domain default, overridable only
// by searching a different postal code.
func NewConfig(defaults Defaults, tokens []string) (Config, error) {
	cfg := Config{
		PostalCode:         defaults.PostalCode,
		Count:              1,
		MaxOrderValue:      50.0,
		MaxDuration:        90,
		MinimumRatingScore: 2.1,
		MinimumRatingVotes: 1,
		IsOpenInMinutes:    0,
		AllowPickup:        false,
	}

	overrides := Parse(tokens)
	if err := overrides.validate(); err != nil {
		return Config{}, err
	}

	if v, ok := overrides["postal_code"]; ok {
		cfg.PostalCode = int(v.Number)
	}
	if v, ok := overrides["count"]; ok {
		cfg.Count = int(v.Number)
		if cfg.Count < 1 {
			return Config{}, &ValidationError{Field: "count", Reason: "must be at least 1"}
		}
	}
	if v, ok := overrides["max_order_value"]; ok {
		cfg.MaxOrderValue = v.Number
	}
	if v, ok := overrides["max_duration"]; ok {
		cfg.MaxDuration = int(v.Number)
	}
	if v, ok := overrides["minimum_rating_score"]; ok {
		cfg.MinimumRatingScore = v.Number
	}
	if v, ok := overrides["minimum_rating_votes"]; ok {
		cfg.MinimumRatingVotes = int(v.Number)
	}
	if v, ok := overrides["cities_to_ignore"]; ok {
		cfg.CitiesToIgnore = v.List
	}
	if v, ok := overrides["is_open_in_minutes"]; ok {
		cfg.IsOpenInMinutes = int(v.Number)
	}
	if v, ok := overrides["cuisines_to_include"]; ok {
		cfg.CuisinesToInclude = v.List
	}
	if v, ok := overrides["cuisines_to_exclude"]; ok {
		cfg.CuisinesToExclude = v.List
	}
	if v, ok := overrides["allow_pickup"]; ok {
		cfg.AllowPickup = v.Bool
	}

	if cfg.PostalCode == defaults.PostalCode {
		cfg.CitiesToIgnore = append(cfg.CitiesToIgnore, frankfurtCity)
	}

	return cfg, nil
}
