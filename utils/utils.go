package utils

import (
	"slices"
	"strings"
)

// CombineTableNames concatenates two table names deterministically: the
// case-insensitively smaller name comes first, original casing preserved.
// Used to derive canonical many-to-many join-table names.
func CombineTableNames(tableName1, tableName2 string) string {
	if strings.ToLower(tableName1) < strings.ToLower(tableName2) {
		return tableName1 + tableName2
	}
	return tableName2 + tableName1
}

// GenerateEnumName returns the name of the enum type backing a column.
func GenerateEnumName(tableName, columnName string) string {
	return "enum_" + tableName + "_" + columnName
}

// IndexField is a field entry of an Index descriptor carrying an explicit
// column name or attribute reference.
type IndexField struct {
	Name      string
	Attribute string
}

// Index describes a table index. Fields entries are either plain column
// names (string) or IndexField descriptors.
type Index struct {
	Name   string
	Fields []any
}

// NameIndex synthesizes a deterministic name for the index from the table
// name and its field names, mutating and returning the descriptor. An index
// that already has a name is returned unchanged.
func NameIndex(index *Index, tableName string) *Index {
	if index.Name != "" {
		return index
	}
	parts := make([]string, 0, len(index.Fields)+1)
	parts = append(parts, tableName)
	for _, f := range index.Fields {
		switch x := f.(type) {
		case string:
			parts = append(parts, x)
		case IndexField:
			if x.Name != "" {
				parts = append(parts, x.Name)
			} else {
				parts = append(parts, x.Attribute)
			}
		}
	}
	index.Name = Underscore(strings.Join(parts, "_"))
	return index
}

// FlattenObjectDeep flattens nested plain maps into a single-level map with
// dot-joined path keys. Non-map inputs pass through unchanged; slices and
// other values at any depth are leaves.
func FlattenObjectDeep(value any) any {
	obj, ok := value.(map[string]any)
	if !ok {
		return value
	}
	flattened := make(map[string]any)
	var flatten func(m map[string]any, subPath string)
	flatten = func(m map[string]any, subPath string) {
		for key, v := range m {
			pathToProperty := key
			if subPath != "" {
				pathToProperty = subPath + "." + key
			}
			if nested, ok := v.(map[string]any); ok {
				flatten(nested, pathToProperty)
				continue
			}
			flattened[pathToProperty] = v
		}
	}
	flatten(obj, "")
	return flattened
}

// Intersects reports whether any element of a is also present in b.
func Intersects[T comparable](a, b []T) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}
