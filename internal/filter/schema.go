package filter

// Kind declares the value type a filter field accepts.
type Kind string

// Supported field kinds.
const (
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindList    Kind = "list"
)

// Field describes one entry of the filter schema: its name as typed by users,
// the value kind used for validation, the default shown in help text and a
// short description.
type Field struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	Default     string `json:"default"`
	Description string `json:"description"`
}

// schema is the closed set of recognized filter fields. The parser, the
// validator and the help-text generation all consume this table; keys outside
// of it are silently ignored.
var schema = []Field{
	{Name: "postal_code", Kind: KindInteger, Default: "configured default", Description: "postal code to search restaurants in"},
	{Name: "count", Kind: KindInteger, Default: "1", Description: "number of restaurants to return"},
	{Name: "max_order_value", Kind: KindNumber, Default: "50.0", Description: "minimum order value must be below (or equal to) this threshold"},
	{Name: "max_duration", Kind: KindInteger, Default: "90", Description: "maximum delivery duration in minutes"},
	{Name: "minimum_rating_score", Kind: KindNumber, Default: "2.1", Description: "minimum rating score (0.0 - 5.0)"},
	{Name: "minimum_rating_votes", Kind: KindInteger, Default: "1", Description: "minimum votes for the restaurant"},
	{Name: "cities_to_ignore", Kind: KindList, Default: "frankfurt (for the default postal code)", Description: "list of cities to ignore"},
	{Name: "is_open_in_minutes", Kind: KindInteger, Default: "0", Description: "include restaurants which open x minutes from now"},
	{Name: "cuisines_to_include", Kind: KindList, Default: "", Description: "list of cuisines which a restaurant must include"},
	{Name: "cuisines_to_exclude", Kind: KindList, Default: "", Description: "list of cuisines which must not appear in restaurant choices"},
	{Name: "allow_pickup", Kind: KindBoolean, Default: "false", Description: "by default only restaurants which support delivery are returned"},
}

// DescribeSchema returns the ordered filter schema for help-text generation.
func DescribeSchema() []Field {
	out := make([]Field, len(schema))
	copy(out, schema)
	return out
}

func fieldByName(name string) (Field, bool) {
	for _, f := range schema {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
