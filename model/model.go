// Package model defines the read-only model contract consumed by the
// field-name mapping layer, and the mapping operations that translate
// logical attribute names into physical column names inside finder options,
// where clauses and value maps.
package model

import "github.com/yocontra/sequelize/schema/field"

// Attribute is the field metadata a model declares per logical attribute.
type Attribute struct {
	// Field is the physical column name, which may differ from the logical
	// attribute name.
	Field string
	// FieldName is the logical attribute name.
	FieldName string
	// Type is the declared data type.
	Type field.Type
}

// Model is the contract of the schema layer this package consults. It is
// read-only from the mapping layer's point of view.
type Model interface {
	// RawAttributes maps logical attribute names to their field metadata.
	RawAttributes() map[string]Attribute
	// IsVirtualAttribute reports whether name is a virtual attribute with
	// no physical column.
	IsVirtualAttribute(name string) bool
	// InjectDependentVirtualAttributes expands the attribute list with
	// attributes that the named virtual attributes depend on.
	InjectDependentVirtualAttributes(attrs []string) []string
}
