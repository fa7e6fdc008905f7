package sql

import (
	"slices"
	"strings"

	"github.com/yocontra/sequelize/op"
)

// Expr is the marker implemented by all SQL value wrappers. Wrappers
// represent constructs that a query builder compiles into SQL and that
// generic cloning and merging must never traverse as plain data. Every
// wrapper carries its own clone rule via Clone.
type Expr interface {
	expr()
	// Clone returns a copy of the wrapper. Immutable wrappers may return
	// the receiver.
	Clone() any
}

// Fn represents a SQL function call, e.g. upper("name").
type Fn struct {
	// Name is the function name, emitted verbatim.
	Name string
	// Args are the call arguments. Entries may be plain values or nested
	// Exprs.
	Args []any
}

// NewFn returns a function-call wrapper.
func NewFn(name string, args ...any) *Fn {
	return &Fn{Name: name, Args: args}
}

func (*Fn) expr() {}

// Clone returns a copy of the call with nested wrappers cloned.
func (f *Fn) Clone() any {
	args := slices.Clone(f.Args)
	for i, a := range args {
		if c, ok := a.(Expr); ok {
			args[i] = c.Clone()
		}
	}
	return &Fn{Name: f.Name, Args: args}
}

// Col represents a raw column reference. Columns are exempt from
// identifier mapping.
type Col struct {
	Name string
}

// NewCol returns a column-reference wrapper.
func NewCol(name string) *Col {
	return &Col{Name: name}
}

func (*Col) expr() {}

// Clone returns the receiver. Column references are immutable.
func (c *Col) Clone() any { return c }

// Cast represents a SQL type cast, e.g. CAST(x AS text).
type Cast struct {
	// Value is the expression being cast.
	Value any
	// Type is the target SQL type, trimmed of surrounding whitespace.
	Type string
	// JSON marks casts applied to JSON accessors.
	JSON bool
}

// NewCast returns a cast wrapper with the target type trimmed.
func NewCast(value any, sqlType string) *Cast {
	return &Cast{Value: value, Type: strings.TrimSpace(sqlType)}
}

// NewJSONCast returns a cast wrapper flagged as a JSON cast.
func NewJSONCast(value any, sqlType string) *Cast {
	c := NewCast(value, sqlType)
	c.JSON = true
	return c
}

func (*Cast) expr() {}

// Clone returns a copy of the cast with a nested wrapper cloned.
func (c *Cast) Clone() any {
	clone := *c
	if e, ok := c.Value.(Expr); ok {
		clone.Value = e.Clone()
	}
	return &clone
}

// Literal represents a raw unescaped SQL fragment.
type Literal struct {
	Text string
}

// NewLiteral returns a raw-fragment wrapper.
func NewLiteral(text string) *Literal {
	return &Literal{Text: text}
}

func (*Literal) expr() {}

// Clone returns the receiver. Literals are immutable.
func (l *Literal) Clone() any { return l }

// JSON represents a JSON accessor: either a condition object or a dotted
// path with an optional comparison value. Exactly one of Conditions or Path
// is set; Value is only meaningful with Path.
type JSON struct {
	Conditions map[op.Key]any
	Path       string
	Value      any
}

// NewJSONConditions returns a JSON wrapper over a condition object.
func NewJSONConditions(conditions map[op.Key]any) *JSON {
	return &JSON{Conditions: conditions}
}

// NewJSONPath returns a JSON wrapper over a dotted path. A nil value means
// the accessor is used without a comparison.
func NewJSONPath(path string, value any) *JSON {
	return &JSON{Path: path, Value: value}
}

func (*JSON) expr() {}

// Clone returns a copy of the accessor with the condition object copied.
func (j *JSON) Clone() any {
	clone := *j
	if j.Conditions != nil {
		clone.Conditions = make(map[op.Key]any, len(j.Conditions))
		for k, v := range j.Conditions {
			clone.Conditions[k] = v
		}
	}
	return &clone
}

// Where represents a raw comparison between an attribute and a logic value.
type Where struct {
	// Attribute is the left-hand side, typically a *Col.
	Attribute any
	// Comparator is the SQL comparison operator, "=" by default.
	Comparator string
	// Logic is the right-hand side.
	Logic any
}

// NewWhere returns a comparison with the default "=" comparator.
func NewWhere(attribute, logic any) *Where {
	return &Where{Attribute: attribute, Comparator: "=", Logic: logic}
}

// NewWhereComparator returns a comparison with an explicit comparator.
func NewWhereComparator(attribute any, comparator string, logic any) *Where {
	if comparator == "" {
		comparator = "="
	}
	return &Where{Attribute: attribute, Comparator: comparator, Logic: logic}
}

func (*Where) expr() {}

// Clone returns a copy of the comparison with nested wrappers cloned.
func (w *Where) Clone() any {
	clone := *w
	if e, ok := w.Attribute.(Expr); ok {
		clone.Attribute = e.Clone()
	}
	if e, ok := w.Logic.(Expr); ok {
		clone.Logic = e.Clone()
	}
	return &clone
}
