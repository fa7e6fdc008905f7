package utils

import (
	"sort"

	"github.com/yocontra/sequelize/op"
)

// Operators returns the operator keys of the where clause, in tag order.
func Operators(where map[op.Key]any) []op.Op {
	ops := make([]op.Op, 0, len(where))
	for k := range where {
		if o, ok := k.Op(); ok {
			ops = append(ops, o)
		}
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// ComplexKeys returns every key of the where clause: operator keys first in
// tag order, then named keys in lexical order. The ordering makes callers
// that mutate while iterating deterministic.
func ComplexKeys(where map[op.Key]any) []op.Key {
	keys := make([]op.Key, 0, len(where))
	for _, o := range Operators(where) {
		keys = append(keys, op.Symbol(o))
	}
	names := make([]string, 0, len(where))
	for k := range where {
		if name, ok := k.Name(); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		keys = append(keys, op.Named(name))
	}
	return keys
}

// ComplexSize returns the number of elements of a sequence, or the number of
// complex keys of a where clause. Anything else has size zero.
func ComplexSize(v any) int {
	switch x := v.(type) {
	case []any:
		return len(x)
	case map[op.Key]any:
		return len(x)
	default:
		return 0
	}
}

// IsWhereEmpty reports whether the where clause is present but carries no
// complex keys at all.
func IsWhereEmpty(where map[op.Key]any) bool {
	return where != nil && len(where) == 0
}
