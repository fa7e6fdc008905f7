// Package op defines the operator registry used for symbolic where-clause
// keys, and the Key union under which plain attribute names and operators
// share a single key space.
//
// A where clause is a map[op.Key]any. String attributes and operators are
// both first-class keys:
//
//	where := map[op.Key]any{
//	    op.Named("name"): "bobby",
//	    op.Symbol(op.Or): []any{
//	        map[op.Key]any{op.Named("age"): 12},
//	        map[op.Key]any{op.Named("age"): 37},
//	    },
//	}
package op

// Op is an operator tag recognized as a complex where-clause key.
type Op uint8

// The fixed registry of recognized operators.
const (
	And Op = iota + 1
	Or
	Not
	Eq
	Ne
	Is
	Gt
	Gte
	Lt
	Lte
	Between
	NotBetween
	In
	NotIn
	Like
	NotLike
	ILike
	NotILike
	StartsWith
	EndsWith
	Substring
	Regexp
	NotRegexp
	IRegexp
	NotIRegexp
	Overlap
	Contains
	Contained
	Adjacent
	StrictLeft
	StrictRight
	NoExtendLeft
	NoExtendRight
	Any
	All
	Values
	Col
	Placeholder
	Join
	endOps
)

var opNames = [...]string{
	And:           "and",
	Or:            "or",
	Not:           "not",
	Eq:            "eq",
	Ne:            "ne",
	Is:            "is",
	Gt:            "gt",
	Gte:           "gte",
	Lt:            "lt",
	Lte:           "lte",
	Between:       "between",
	NotBetween:    "notBetween",
	In:            "in",
	NotIn:         "notIn",
	Like:          "like",
	NotLike:       "notLike",
	ILike:         "iLike",
	NotILike:      "notILike",
	StartsWith:    "startsWith",
	EndsWith:      "endsWith",
	Substring:     "substring",
	Regexp:        "regexp",
	NotRegexp:     "notRegexp",
	IRegexp:       "iRegexp",
	NotIRegexp:    "notIRegexp",
	Overlap:       "overlap",
	Contains:      "contains",
	Contained:     "contained",
	Adjacent:      "adjacent",
	StrictLeft:    "strictLeft",
	StrictRight:   "strictRight",
	NoExtendLeft:  "noExtendLeft",
	NoExtendRight: "noExtendRight",
	Any:           "any",
	All:           "all",
	Values:        "values",
	Col:           "col",
	Placeholder:   "placeholder",
	Join:          "join",
}

// String returns the operator name.
func (o Op) String() string {
	if !o.Valid() {
		return "invalid"
	}
	return opNames[o]
}

// Valid reports whether o is a recognized operator.
func (o Op) Valid() bool {
	return o > 0 && o < endOps
}

// Registry returns all recognized operators in tag order.
func Registry() []Op {
	ops := make([]Op, 0, int(endOps)-1)
	for o := And; o < endOps; o++ {
		ops = append(ops, o)
	}
	return ops
}

// Key is a where-clause key: either a plain attribute name or an operator
// tag. The zero Key is neither and should not be used.
type Key struct {
	name string
	op   Op
}

// Named returns a Key for a plain attribute name.
func Named(name string) Key {
	return Key{name: name}
}

// Symbol returns a Key for an operator.
func Symbol(o Op) Key {
	return Key{op: o}
}

// Name returns the attribute name and true if the key is a named key.
func (k Key) Name() (string, bool) {
	return k.name, k.op == 0
}

// Op returns the operator and true if the key is an operator key.
func (k Key) Op() (Op, bool) {
	return k.op, k.op != 0
}

// IsOperator reports whether the key is an operator key.
func (k Key) IsOperator() bool {
	return k.op != 0
}

// String returns the attribute name for named keys and the operator name
// for operator keys.
func (k Key) String() string {
	if k.op != 0 {
		return k.op.String()
	}
	return k.name
}
