package utils

import (
	"maps"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/yocontra/sequelize/dialect"
	"github.com/yocontra/sequelize/schema/field"
)

// ToDefaultValue resolves a declared column default into a concrete value
// for the given dialect. Callables are invoked; UUID and NOW sentinels are
// generated fresh; slices and plain maps are shallow-copied; anything else
// is returned unchanged.
func ToDefaultValue(value any, d string) any {
	switch v := value.(type) {
	case func() any:
		result := v()
		if t, ok := result.(field.Type); ok {
			return t.SQL()
		}
		return result
	case field.UUIDV1Type:
		return uuid.Must(uuid.NewUUID()).String()
	case field.UUIDV4Type:
		return uuid.NewString()
	case field.NowType:
		return Now(d)
	case []any:
		return slices.Clone(v)
	case map[string]any:
		return maps.Clone(v)
	default:
		return value
	}
}

// DefaultValueSchemable reports whether value can be rendered as a static
// schema default. Sentinels and callables are computed at insert time and
// are not schemable; neither is an absent (nil) value.
func DefaultValueSchemable(value any) bool {
	if value == nil {
		return false
	}
	switch value.(type) {
	case field.NowType, field.UUIDV1Type, field.UUIDV4Type:
		return false
	}
	return reflect.ValueOf(value).Kind() != reflect.Func
}

// Now returns the current time for the given dialect. Dialects outside the
// known set lack sub-second timestamp support, so the value is truncated to
// whole seconds for them.
func Now(d string) time.Time {
	now := time.Now()
	if !dialect.Valid(d) {
		now = now.Truncate(time.Second)
	}
	return now
}
