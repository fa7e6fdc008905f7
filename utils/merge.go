package utils

import (
	"reflect"

	"github.com/yocontra/sequelize/op"
)

// Cloneable is implemented by values that carry their own clone rule, such
// as the SQL value wrappers in dialect/sql. CloneDeep dispatches to it
// instead of traversing the value as plain data.
type Cloneable interface {
	Clone() any
}

// CloneDeep deep-clones slices and plain maps structurally. For any other
// value: if onlyPlain is set, the value passes through by reference;
// otherwise a value exposing the Cloneable capability is cloned through it,
// and everything else passes through by reference.
func CloneDeep(v any, onlyPlain bool) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = CloneDeep(e, onlyPlain)
		}
		return out
	case map[op.Key]any:
		out := make(map[op.Key]any, len(x))
		for k, e := range x {
			out[k] = CloneDeep(e, onlyPlain)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = CloneDeep(e, onlyPlain)
		}
		return out
	default:
		if !onlyPlain {
			if c, ok := v.(Cloneable); ok {
				return c.Clone()
			}
		}
		return v
	}
}

// Merge merges the given objects right-biased into a fresh map: nil values
// are skipped, plain maps merge recursively, slices concatenate with the
// newer entries first, and any other value overwrites.
func Merge(objects ...map[string]any) map[string]any {
	result := make(map[string]any)
	for _, obj := range objects {
		for key, value := range obj {
			if value == nil {
				continue
			}
			prev, ok := result[key]
			if !ok {
				result[key] = value
				continue
			}
			switch v := value.(type) {
			case map[string]any:
				if pm, ok := prev.(map[string]any); ok {
					result[key] = Merge(pm, v)
					continue
				}
			case []any:
				if ps, ok := prev.([]any); ok {
					merged := make([]any, 0, len(v)+len(ps))
					merged = append(merged, v...)
					merged = append(merged, ps...)
					result[key] = merged
					continue
				}
			}
			result[key] = value
		}
	}
	return result
}

// MergeDefaults deep-merges b into a, mutating and returning a. Leaves
// already defined in a win over b, except that a function value in a (a
// platform default) yields to a value supplied in b. Nested plain maps merge
// recursively under the same rule.
func MergeDefaults(a, b map[string]any) map[string]any {
	for key, bv := range b {
		if bv == nil {
			continue
		}
		av, ok := a[key]
		if !ok || av == nil {
			a[key] = bv
			continue
		}
		if am, ok := av.(map[string]any); ok {
			if bm, ok := bv.(map[string]any); ok {
				MergeDefaults(am, bm)
			} else {
				a[key] = bv
			}
			continue
		}
		if reflect.ValueOf(av).Kind() == reflect.Func {
			a[key] = bv
		}
	}
	return a
}
