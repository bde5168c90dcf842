package filter

import (
	"reflect"
	"testing"
)

const testDefaultPostalCode = 64293

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(Defaults{PostalCode: testDefaultPostalCode}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PostalCode != testDefaultPostalCode || cfg.Count != 1 {
		t.Fatalf("unexpected base values: %+v", cfg)
	}
	if cfg.MaxOrderValue != 50.0 || cfg.MaxDuration != 90 {
		t.Fatalf("unexpected thresholds: %+v", cfg)
	}
	if cfg.MinimumRatingScore != 2.1 || cfg.MinimumRatingVotes != 1 {
		t.Fatalf("unexpected rating thresholds: %+v", cfg)
	}
	if cfg.IsOpenInMinutes != 0 || cfg.AllowPickup {
		t.Fatalf("unexpected open/pickup defaults: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CitiesToIgnore, []string{"frankfurt"}) {
		t.Fatalf("expected frankfurt for the default postal code, got %v", cfg.CitiesToIgnore)
	}
}

func TestNewConfig_FrankfurtOnlyForDefaultPostalCode(t *testing.T) {
	cfg, err := NewConfig(Defaults{PostalCode: testDefaultPostalCode}, []string{"postal_code:60311", "cities_to_ignore:offenbach,hanau"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PostalCode != 60311 {
		t.Fatalf("expected postal code override, got %d", cfg.PostalCode)
	}
	if !reflect.DeepEqual(cfg.CitiesToIgnore, []string{"offenbach", "hanau"}) {
		t.Fatalf("expected only the user-supplied cities, got %v", cfg.CitiesToIgnore)
	}
}

func TestNewConfig_FrankfurtAppendedToUserCities(t *testing.T) {
	cfg, err := NewConfig(Defaults{PostalCode: testDefaultPostalCode}, []string{"cities_to_ignore:offenbach"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(cfg.CitiesToIgnore, []string{"offenbach", "frankfurt"}) {
		t.Fatalf("expected frankfurt appended, got %v", cfg.CitiesToIgnore)
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	cfg, err := NewConfig(Defaults{PostalCode: testDefaultPostalCode}, []string{
		"minimum_rating_score:3.5",
		"allow_pickup:yes",
		"cuisines_to_exclude:pizza,burger",
		"count:4",
		"is_open_in_minutes:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MinimumRatingScore != 3.5 {
		t.Fatalf("expected minimum rating score 3.5, got %v", cfg.MinimumRatingScore)
	}
	if !cfg.AllowPickup {
		t.Fatalf("expected allow pickup true")
	}
	if !reflect.DeepEqual(cfg.CuisinesToExclude, []string{"pizza", "burger"}) {
		t.Fatalf("unexpected exclusions: %v", cfg.CuisinesToExclude)
	}
	if cfg.Count != 4 || cfg.IsOpenInMinutes != 30 {
		t.Fatalf("unexpected count/open offset: %+v", cfg)
	}
}

func TestNewConfig_CountMustBePositive(t *testing.T) {
	_, err := NewConfig(Defaults{PostalCode: testDefaultPostalCode}, []string{"count:0"})
	if err == nil {
		t.Fatalf("expected error for zero count")
	}

	verr, ok := err.(*ValidationError)
	if !ok || verr.Field != "count" {
		t.Fatalf("expected validation error naming count, got %v", err)
	}
}
