// Package field provides the data-type tags attached to model attributes and
// the default-value sentinels resolved at insert time.
//
// Type tags drive dialect-specific behavior in the mapping layer, e.g. JSON
// and HSTORE typed attributes are opaque payloads and are never traversed as
// nested where clauses. Sentinels mark defaults that cannot be rendered as a
// static schema default:
//
//	field.UUIDV1  // fresh version-1 UUID per row
//	field.UUIDV4  // fresh version-4 UUID per row
//	field.Now     // current timestamp per row
package field

// Type is the data-type tag of a model attribute.
type Type uint8

// List of attribute types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeDecimal
	TypeString
	TypeText
	TypeBytes
	TypeTime
	TypeUUID
	TypeEnum
	TypeJSON
	TypeJSONB
	TypeHSTORE
	TypeVirtual
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeFloat:   "float",
	TypeDecimal: "decimal",
	TypeString:  "string",
	TypeText:    "text",
	TypeBytes:   "bytes",
	TypeTime:    "time",
	TypeUUID:    "uuid",
	TypeEnum:    "enum",
	TypeJSON:    "json",
	TypeJSONB:   "jsonb",
	TypeHSTORE:  "hstore",
	TypeVirtual: "virtual",
}

var typeSQL = [...]string{
	TypeInvalid: "",
	TypeBool:    "BOOLEAN",
	TypeInt:     "INTEGER",
	TypeFloat:   "FLOAT",
	TypeDecimal: "DECIMAL",
	TypeString:  "VARCHAR(255)",
	TypeText:    "TEXT",
	TypeBytes:   "BLOB",
	TypeTime:    "TIMESTAMP",
	TypeUUID:    "UUID",
	TypeEnum:    "ENUM",
	TypeJSON:    "JSON",
	TypeJSONB:   "JSONB",
	TypeHSTORE:  "HSTORE",
	TypeVirtual: "",
}

// String returns the type name.
func (t Type) String() string {
	if !t.Valid() {
		return typeNames[TypeInvalid]
	}
	return typeNames[t]
}

// Valid reports whether t is a recognized type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// SQL returns the generic SQL textual representation of the type.
func (t Type) SQL() string {
	if !t.Valid() {
		return ""
	}
	return typeSQL[t]
}

// IsJSON reports whether the type belongs to the JSON family.
func (t Type) IsJSON() bool {
	return t == TypeJSON || t == TypeJSONB
}

// Default-value sentinel types. Attributes declaring one of these as their
// default have the actual value computed at insert time.
type (
	// UUIDV1Type is the type of the UUIDV1 sentinel.
	UUIDV1Type struct{}
	// UUIDV4Type is the type of the UUIDV4 sentinel.
	UUIDV4Type struct{}
	// NowType is the type of the Now sentinel.
	NowType struct{}
)

// Default-value sentinels.
var (
	// UUIDV1 generates a fresh version-1 UUID per row.
	UUIDV1 UUIDV1Type
	// UUIDV4 generates a fresh version-4 UUID per row.
	UUIDV4 UUIDV4Type
	// Now resolves to the current timestamp per row.
	Now NowType
)
