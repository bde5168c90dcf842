package entity

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	numericCuisineID  = regexp.MustCompile(`^\d+$`)
	suffixedCuisineID = regexp.MustCompile(`^(.+?)_\d+`)
)

// CuisineType wraps a raw upstream cuisine identifier such as "italian_123" or
// "2600".
type CuisineType struct {
	ID string `json:"id"`
}

// NewCuisineType builds a cuisine from a raw identifier or a plain user-typed
// name such as "pizza".
func NewCuisineType(id string) CuisineType {
	return CuisineType{ID: id}
}

// Name derives the display name of the cuisine. Identifiers of the form
// "name_NNN" yield "Name" with dashes replaced by spaces. Purely numeric
// identifiers carry no display name (they are not shown in the upstream app
// either) and yield the empty string.
func (c CuisineType) Name() string {
	if numericCuisineID.MatchString(c.ID) {
		return ""
	}
	if m := suffixedCuisineID.FindStringSubmatch(c.ID); m != nil {
		return upperFirst(strings.ReplaceAll(m[1], "-", " "))
	}
	return upperFirst(c.ID)
}

// Matches reports whether two cuisines identify the same kind of food: either
// the raw identifiers are equal or both derive the same display name
// (case-insensitive). Nameless numeric identifiers never match by name.
func (c CuisineType) Matches(other CuisineType) bool {
	if c.ID == other.ID {
		return true
	}
	name, otherName := c.Name(), other.Name()
	if name == "" || otherName == "" {
		return false
	}
	return strings.EqualFold(name, otherName)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
