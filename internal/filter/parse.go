package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ValidationError indicates a malformed or type-mismatched filter argument.
// Its message is intended to be shown to the user verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Reason)
}

// Value is a parsed override prior to typed application. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Value struct {
	Kind   Kind
	Number float64
	Bool   bool
	List   []string
}

// Overrides maps lowercase field names to their parsed values.
type Overrides map[string]Value

var (
	numberArg  = regexp.MustCompile(`(\w+):(\d+(?:\.\d+)?)`)
	booleanArg = regexp.MustCompile(`(?i)(\w+):(no|yes|true|false)\b`)
	listArg    = regexp.MustCompile(`(\w+):((?:[\w-]+,?)+)`)
)

// Parse extracts key:value overrides from free-form command tokens. The
// tokens are newline-joined, then matched in three ordered stages: numbers,
// boolean words and comma-separated word lists. A key claimed by an earlier
// stage is not reinterpreted by a later one; the first match per key wins.
// Unrecognized keys are kept here and dropped during typed application.
func Parse(tokens []string) Overrides {
	if len(tokens) == 0 {
		return Overrides{}
	}
	text := strings.Join(tokens, "\n")
	overrides := Overrides{}

	for _, m := range numberArg.FindAllStringSubmatch(text, -1) {
		key := strings.ToLower(m[1])
		if _, claimed := overrides[key]; claimed {
			continue
		}
		// the pattern only admits digits and an optional fraction
		number, _ := strconv.ParseFloat(m[2], 64)
		overrides[key] = Value{Kind: KindNumber, Number: number}
	}

	for _, m := range booleanArg.FindAllStringSubmatch(text, -1) {
		key := strings.ToLower(m[1])
		if _, claimed := overrides[key]; claimed {
			continue
		}
		word := strings.ToLower(m[2])
		overrides[key] = Value{Kind: KindBoolean, Bool: word == "yes" || word == "true"}
	}

	for _, m := range listArg.FindAllStringSubmatch(text, -1) {
		key := strings.ToLower(m[1])
		if _, claimed := overrides[key]; claimed {
			continue
		}
		overrides[key] = Value{Kind: KindList, List: strings.Split(strings.TrimSuffix(m[2], ","), ",")}
	}

	return overrides
}

// validate checks every override that names a known schema field against the
// field's declared kind. All-or-nothing: the first mismatch aborts the whole
// override set.
func (o Overrides) validate() error {
	for _, field := range schema {
		value, ok := o[field.Name]
		if !ok {
			continue
		}
		if !kindAccepts(field.Kind, value.Kind) {
			return &ValidationError{
				Field:  field.Name,
				Reason: fmt.Sprintf("expected %s, got %s", field.Kind, value.Kind),
			}
		}
	}
	return nil
}

func kindAccepts(declared, supplied Kind) bool {
	switch declared {
	case KindNumber, KindInteger:
		return supplied == KindNumber
	case KindBoolean:
		return supplied == KindBoolean
	case KindList:
		return supplied == KindList
	default:
		return false
	}
}
