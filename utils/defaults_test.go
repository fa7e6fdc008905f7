package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yocontra/sequelize/dialect"
	"github.com/yocontra/sequelize/schema/field"
)

func TestToDefaultValue(t *testing.T) {
	t.Parallel()

	t.Run("callable", func(t *testing.T) {
		got := ToDefaultValue(func() any { return 42 }, dialect.Postgres)
		assert.Equal(t, 42, got)
	})

	t.Run("callable_returning_type", func(t *testing.T) {
		got := ToDefaultValue(func() any { return field.TypeUUID }, dialect.Postgres)
		assert.Equal(t, "UUID", got)
	})

	t.Run("uuid_v1", func(t *testing.T) {
		got, ok := ToDefaultValue(field.UUIDV1, dialect.Postgres).(string)
		require.True(t, ok)
		id, err := uuid.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(1), id.Version())
	})

	t.Run("uuid_v4", func(t *testing.T) {
		got, ok := ToDefaultValue(field.UUIDV4, dialect.Postgres).(string)
		require.True(t, ok)
		id, err := uuid.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())
		// Fresh per call.
		other := ToDefaultValue(field.UUIDV4, dialect.Postgres).(string)
		assert.NotEqual(t, got, other)
	})

	t.Run("now", func(t *testing.T) {
		got, ok := ToDefaultValue(field.Now, dialect.Postgres).(time.Time)
		require.True(t, ok)
		assert.WithinDuration(t, time.Now(), got, time.Minute)
	})

	t.Run("slice_copied", func(t *testing.T) {
		src := []any{1, 2}
		got := ToDefaultValue(src, dialect.Postgres).([]any)
		got[0] = 9
		assert.Equal(t, 1, src[0])
	})

	t.Run("map_copied", func(t *testing.T) {
		src := map[string]any{"a": 1}
		got := ToDefaultValue(src, dialect.Postgres).(map[string]any)
		got["a"] = 9
		assert.Equal(t, 1, src["a"])
	})

	t.Run("identity", func(t *testing.T) {
		assert.Equal(t, "hello", ToDefaultValue("hello", dialect.Postgres))
		assert.Equal(t, 5, ToDefaultValue(5, dialect.Postgres))
		assert.Nil(t, ToDefaultValue(nil, dialect.Postgres))
	})
}

func TestDefaultValueSchemable(t *testing.T) {
	t.Parallel()

	assert.False(t, DefaultValueSchemable(nil))
	assert.False(t, DefaultValueSchemable(field.Now))
	assert.False(t, DefaultValueSchemable(field.UUIDV1))
	assert.False(t, DefaultValueSchemable(field.UUIDV4))
	assert.False(t, DefaultValueSchemable(func() any { return 1 }))

	assert.True(t, DefaultValueSchemable("active"))
	assert.True(t, DefaultValueSchemable(0))
	assert.True(t, DefaultValueSchemable(false))
}

func TestNow(t *testing.T) {
	t.Parallel()

	for _, d := range dialect.All() {
		got := Now(d)
		assert.WithinDuration(t, time.Now(), got, time.Minute)
	}

	// Unknown dialects truncate to whole seconds.
	got := Now("snowflake")
	assert.Zero(t, got.Nanosecond())
}
