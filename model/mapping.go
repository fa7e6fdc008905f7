package model

import (
	"github.com/yocontra/sequelize/op"
	"github.com/yocontra/sequelize/schema/field"
	"github.com/yocontra/sequelize/utils"
)

// FinderOptions is the slice of a query-options object this package
// rewrites: the attribute list and the where clause. Attributes entries are
// plain names (string), [2]string column/alias pairs, or SQL value wrappers,
// which pass through untouched.
type FinderOptions struct {
	Attributes []any
	Where      map[op.Key]any
}

// MapFinderOptions expands the attribute list with dependent virtual
// attributes, drops the virtual attributes themselves (they have no
// column to select), and maps field names. Mutates and returns options.
func MapFinderOptions(options *FinderOptions, m Model) *FinderOptions {
	if options == nil || m == nil {
		return options
	}
	if options.Attributes != nil {
		options.Attributes = injectAndFilterVirtual(options.Attributes, m)
	}
	return MapOptionFieldNames(options, m)
}

// injectAndFilterVirtual runs virtual-attribute dependency injection over
// the string entries of attrs. Injected additions append after the
// originals; non-string entries keep their positions; virtual attributes
// are dropped.
func injectAndFilterVirtual(attrs []any, m Model) []any {
	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if s, ok := a.(string); ok {
			names = append(names, s)
		}
	}
	injected := m.InjectDependentVirtualAttributes(names)

	seen := make(map[string]struct{}, len(names))
	for _, s := range names {
		seen[s] = struct{}{}
	}
	out := make([]any, 0, len(attrs))
	for _, a := range attrs {
		s, ok := a.(string)
		if !ok {
			out = append(out, a)
			continue
		}
		if m.IsVirtualAttribute(s) {
			continue
		}
		out = append(out, s)
	}
	for _, s := range injected {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		if m.IsVirtualAttribute(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// MapOptionFieldNames replaces each plain attribute name that has a distinct
// physical field with a [physicalField, logicalAlias] pair and maps the
// where clause recursively. Mutates and returns options.
func MapOptionFieldNames(options *FinderOptions, m Model) *FinderOptions {
	if options == nil || m == nil {
		return options
	}
	rawAttributes := m.RawAttributes()
	for i, a := range options.Attributes {
		name, ok := a.(string)
		if !ok {
			continue
		}
		if attr, ok := rawAttributes[name]; ok && attr.Field != "" && attr.Field != name {
			options.Attributes[i] = [2]string{attr.Field, name}
		}
	}
	if options.Where != nil {
		options.Where = MapWhereFieldNames(options.Where, m)
	}
	return options
}

// fieldRenameExempt reports whether values of the given type are opaque
// payloads that must not be traversed as nested where clauses.
func fieldRenameExempt(t field.Type) bool {
	return t == field.TypeHSTORE || t.IsJSON()
}

// MapWhereFieldNames renames every named key of the where clause that has a
// distinct physical field, and recurses into nested condition maps and into
// map elements of sequence values. HSTORE and JSON typed attributes are
// never recursed into. Mutates and returns attributes.
func MapWhereFieldNames(attributes map[op.Key]any, m Model) map[op.Key]any {
	if attributes == nil || m == nil {
		return attributes
	}
	rawAttributes := m.RawAttributes()
	for _, key := range utils.ComplexKeys(attributes) {
		value := attributes[key]
		var (
			attr    Attribute
			hasAttr bool
		)
		if name, ok := key.Name(); ok {
			attr, hasAttr = rawAttributes[name]
			if hasAttr && attr.Field != "" && attr.Field != name {
				delete(attributes, key)
				key = op.Named(attr.Field)
				attributes[key] = value
			}
		}
		switch v := value.(type) {
		case map[op.Key]any:
			if !hasAttr || !fieldRenameExempt(attr.Type) {
				attributes[key] = MapWhereFieldNames(v, m)
			}
		case []any:
			for i, e := range v {
				if nested, ok := e.(map[op.Key]any); ok {
					v[i] = MapWhereFieldNames(nested, m)
				}
			}
		}
	}
	return attributes
}

// MapValueFieldNames builds a fresh value map keyed by physical field names.
// Virtual attributes and fields absent from dataValues are skipped.
func MapValueFieldNames(dataValues map[string]any, fields []string, m Model) map[string]any {
	values := make(map[string]any, len(fields))
	rawAttributes := m.RawAttributes()
	for _, attr := range fields {
		value, ok := dataValues[attr]
		if !ok || m.IsVirtualAttribute(attr) {
			continue
		}
		if meta, ok := rawAttributes[attr]; ok && meta.Field != "" && meta.Field != attr {
			values[meta.Field] = value
		} else {
			values[attr] = value
		}
	}
	return values
}
