package dialect

import "strings"

// postgresReservedWords is the set of Postgres reserved keywords that must
// always be quoted when used as identifiers. Postgres is the only dialect
// with an unquoted identifier path; the other dialects always quote.
//
// The list tracks the Postgres 10 keyword table and is not versioned against
// newer releases.
var postgresReservedWords = map[string]struct{}{
	"all": {}, "analyse": {}, "analyze": {}, "and": {}, "any": {}, "array": {},
	"as": {}, "asc": {}, "asymmetric": {}, "authorization": {}, "between": {},
	"binary": {}, "both": {}, "case": {}, "cast": {}, "check": {}, "collate": {},
	"column": {}, "constraint": {}, "create": {}, "cross": {},
	"current_date": {}, "current_role": {}, "current_time": {},
	"current_timestamp": {}, "current_user": {}, "default": {},
	"deferrable": {}, "desc": {}, "distinct": {}, "do": {}, "else": {},
	"end": {}, "except": {}, "false": {}, "for": {}, "foreign": {},
	"freeze": {}, "from": {}, "full": {}, "grant": {}, "group": {},
	"having": {}, "ilike": {}, "in": {}, "initially": {}, "inner": {},
	"intersect": {}, "into": {}, "is": {}, "isnull": {}, "join": {},
	"leading": {}, "left": {}, "like": {}, "limit": {}, "localtime": {},
	"localtimestamp": {}, "natural": {}, "new": {}, "not": {}, "notnull": {},
	"null": {}, "off": {}, "offset": {}, "old": {}, "on": {}, "only": {},
	"or": {}, "order": {}, "outer": {}, "overlaps": {}, "placing": {},
	"primary": {}, "references": {}, "right": {}, "select": {},
	"session_user": {}, "similar": {}, "some": {}, "symmetric": {},
	"table": {}, "then": {}, "to": {}, "trailing": {}, "true": {},
	"union": {}, "unique": {}, "user": {}, "using": {}, "verbose": {},
	"when": {}, "where": {}, "with": {},
}

// IsReservedWord reports whether word is a Postgres reserved keyword.
// The check is case-insensitive.
func IsReservedWord(word string) bool {
	_, ok := postgresReservedWords[strings.ToLower(word)]
	return ok
}
