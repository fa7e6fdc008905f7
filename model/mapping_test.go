package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlexpr "github.com/yocontra/sequelize/dialect/sql"
	"github.com/yocontra/sequelize/op"
	"github.com/yocontra/sequelize/schema/field"
)

// testModel is a static Model implementation for mapping tests.
type testModel struct {
	attrs   map[string]Attribute
	virtual map[string][]string // virtual attribute -> dependencies
}

func (m *testModel) RawAttributes() map[string]Attribute { return m.attrs }

func (m *testModel) IsVirtualAttribute(name string) bool {
	_, ok := m.virtual[name]
	return ok
}

func (m *testModel) InjectDependentVirtualAttributes(attrs []string) []string {
	out := make([]string, 0, len(attrs))
	seen := make(map[string]struct{}, len(attrs))
	add := func(s string) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, a := range attrs {
		add(a)
		for _, dep := range m.virtual[a] {
			add(dep)
		}
	}
	return out
}

func newTestModel() *testModel {
	return &testModel{
		attrs: map[string]Attribute{
			"id":        {Field: "id", FieldName: "id", Type: field.TypeInt},
			"firstName": {Field: "first_name", FieldName: "firstName", Type: field.TypeString},
			"createdAt": {Field: "created_at", FieldName: "createdAt", Type: field.TypeTime},
			"settings":  {Field: "settings_json", FieldName: "settings", Type: field.TypeJSON},
			"tags":      {Field: "tags_hstore", FieldName: "tags", Type: field.TypeHSTORE},
			"profile":   {Field: "profile", FieldName: "profile", Type: field.TypeJSONB},
		},
		virtual: map[string][]string{
			"displayName": {"firstName"},
		},
	}
}

func TestMapOptionFieldNames(t *testing.T) {
	t.Parallel()

	t.Run("attributes_renamed_to_pairs", func(t *testing.T) {
		opts := &FinderOptions{Attributes: []any{"id", "firstName"}}
		got := MapOptionFieldNames(opts, newTestModel())
		assert.Same(t, opts, got)
		assert.Equal(t, []any{"id", [2]string{"first_name", "firstName"}}, got.Attributes)
	})

	t.Run("unknown_attributes_pass_through", func(t *testing.T) {
		opts := &FinderOptions{Attributes: []any{"unknown"}}
		MapOptionFieldNames(opts, newTestModel())
		assert.Equal(t, []any{"unknown"}, opts.Attributes)
	})

	t.Run("wrappers_pass_through", func(t *testing.T) {
		fn := sqlexpr.NewFn("count", sqlexpr.NewCol("id"))
		opts := &FinderOptions{Attributes: []any{fn, "firstName"}}
		MapOptionFieldNames(opts, newTestModel())
		assert.Same(t, fn, opts.Attributes[0])
		assert.Equal(t, [2]string{"first_name", "firstName"}, opts.Attributes[1])
	})

	t.Run("where_mapped", func(t *testing.T) {
		opts := &FinderOptions{Where: map[op.Key]any{op.Named("firstName"): "bobby"}}
		MapOptionFieldNames(opts, newTestModel())
		assert.Equal(t, map[op.Key]any{op.Named("first_name"): "bobby"}, opts.Where)
	})

	t.Run("nil_safe", func(t *testing.T) {
		assert.Nil(t, MapOptionFieldNames(nil, newTestModel()))
		opts := &FinderOptions{}
		assert.Same(t, opts, MapOptionFieldNames(opts, newTestModel()))
	})
}

func TestMapWhereFieldNames(t *testing.T) {
	t.Parallel()

	t.Run("renames_keys", func(t *testing.T) {
		where := map[op.Key]any{
			op.Named("firstName"): "bobby",
			op.Named("id"):        1,
		}
		got := MapWhereFieldNames(where, newTestModel())
		assert.Equal(t, map[op.Key]any{
			op.Named("first_name"): "bobby",
			op.Named("id"):         1,
		}, got)
	})

	t.Run("recurses_into_nested_conditions", func(t *testing.T) {
		where := map[op.Key]any{
			op.Named("createdAt"): map[op.Key]any{
				op.Symbol(op.Gt): "2020-01-01",
			},
		}
		got := MapWhereFieldNames(where, newTestModel())
		assert.Equal(t, map[op.Key]any{
			op.Named("created_at"): map[op.Key]any{
				op.Symbol(op.Gt): "2020-01-01",
			},
		}, got)
	})

	t.Run("recurses_into_operator_sequences", func(t *testing.T) {
		where := map[op.Key]any{
			op.Symbol(op.Or): []any{
				map[op.Key]any{op.Named("firstName"): "a"},
				map[op.Key]any{op.Named("firstName"): "b"},
			},
		}
		got := MapWhereFieldNames(where, newTestModel())
		seq := got[op.Symbol(op.Or)].([]any)
		assert.Equal(t, map[op.Key]any{op.Named("first_name"): "a"}, seq[0])
		assert.Equal(t, map[op.Key]any{op.Named("first_name"): "b"}, seq[1])
	})

	t.Run("json_values_are_opaque", func(t *testing.T) {
		// The nested map is a JSON payload, not a predicate: keys inside
		// must not be rewritten even when they collide with attributes.
		payload := map[op.Key]any{op.Named("firstName"): "literal"}
		where := map[op.Key]any{op.Named("settings"): payload}
		got := MapWhereFieldNames(where, newTestModel())
		assert.Equal(t, payload, got[op.Named("settings_json")])
		assert.Equal(t, "literal", payload[op.Named("firstName")])
	})

	t.Run("hstore_values_are_opaque", func(t *testing.T) {
		payload := map[op.Key]any{op.Named("createdAt"): "x"}
		where := map[op.Key]any{op.Named("tags"): payload}
		MapWhereFieldNames(where, newTestModel())
		assert.Equal(t, "x", payload[op.Named("createdAt")])
	})

	t.Run("jsonb_values_are_opaque", func(t *testing.T) {
		payload := map[op.Key]any{op.Named("firstName"): "y"}
		where := map[op.Key]any{op.Named("profile"): payload}
		MapWhereFieldNames(where, newTestModel())
		assert.Equal(t, "y", payload[op.Named("firstName")])
	})

	t.Run("unknown_keys_pass_through", func(t *testing.T) {
		where := map[op.Key]any{op.Named("nope"): 1}
		got := MapWhereFieldNames(where, newTestModel())
		assert.Equal(t, map[op.Key]any{op.Named("nope"): 1}, got)
	})

	t.Run("nil_safe", func(t *testing.T) {
		assert.Nil(t, MapWhereFieldNames(nil, newTestModel()))
	})
}

func TestMapValueFieldNames(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	values := map[string]any{
		"id":          1,
		"firstName":   "bobby",
		"displayName": "Bobby T.",
		"unknown":     true,
	}
	got := MapValueFieldNames(values, []string{"id", "firstName", "displayName", "unknown", "absent"}, m)
	require.NotNil(t, got)
	assert.Equal(t, map[string]any{
		"id":         1,
		"first_name": "bobby",
		"unknown":    true,
	}, got)
	// Input untouched.
	assert.Contains(t, values, "firstName")
}

func TestMapFinderOptions(t *testing.T) {
	t.Parallel()

	t.Run("virtuals_expanded_and_dropped", func(t *testing.T) {
		opts := &FinderOptions{Attributes: []any{"id", "displayName"}}
		got := MapFinderOptions(opts, newTestModel())
		// displayName itself is virtual and dropped; its dependency is
		// injected and mapped to a column/alias pair.
		assert.Equal(t, []any{"id", [2]string{"first_name", "firstName"}}, got.Attributes)
	})

	t.Run("wrappers_keep_positions", func(t *testing.T) {
		lit := sqlexpr.NewLiteral("COUNT(*)")
		opts := &FinderOptions{Attributes: []any{lit, "id"}}
		MapFinderOptions(opts, newTestModel())
		assert.Same(t, lit, opts.Attributes[0])
		assert.Equal(t, "id", opts.Attributes[1])
	})

	t.Run("where_delegated", func(t *testing.T) {
		opts := &FinderOptions{
			Attributes: []any{"id"},
			Where:      map[op.Key]any{op.Named("firstName"): "a"},
		}
		MapFinderOptions(opts, newTestModel())
		assert.Equal(t, map[op.Key]any{op.Named("first_name"): "a"}, opts.Where)
	})

	t.Run("nil_safe", func(t *testing.T) {
		assert.Nil(t, MapFinderOptions(nil, newTestModel()))
	})
}
