// Package utils provides the generic object utilities shared by the query
// builder and the model layer: deep merge with defaults semantics,
// wrapper-aware deep cloning, default-value resolution, name generation and
// where-clause key enumeration.
package utils

import "github.com/go-openapi/inflect"

// Inflector provides the string transforms used when deriving database
// names (tables, indexes, enums) from model names.
type Inflector interface {
	// Underscore converts CamelCase to snake_case.
	Underscore(s string) string
	// Pluralize returns the plural form of a word.
	Pluralize(s string) string
	// Singularize returns the singular form of a word.
	Singularize(s string) string
}

// openapiInflector is the default backend.
type openapiInflector struct{}

func (openapiInflector) Underscore(s string) string  { return inflect.Underscore(s) }
func (openapiInflector) Pluralize(s string) string   { return inflect.Pluralize(s) }
func (openapiInflector) Singularize(s string) string { return inflect.Singularize(s) }

var inflector Inflector = openapiInflector{}

// SetInflector replaces the process-wide inflection backend. Call it once at
// startup, before any other use of this package; it is not synchronized
// against concurrent callers.
func SetInflector(i Inflector) {
	inflector = i
}

// Underscore converts s to snake_case using the current inflection backend.
func Underscore(s string) string {
	return inflector.Underscore(s)
}

// Pluralize returns the plural form of s using the current inflection backend.
func Pluralize(s string) string {
	return inflector.Pluralize(s)
}

// Singularize returns the singular form of s using the current inflection
// backend.
func Singularize(s string) string {
	return inflector.Singularize(s)
}
