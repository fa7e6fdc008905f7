package dialect

import (
	"regexp"
	"strings"

	"github.com/yocontra/sequelize"
)

// QuoteOptions controls whether Postgres identifiers may skip quoting when
// safe. A nil *QuoteOptions means the defaults: Force false and
// QuoteIdentifiers true.
type QuoteOptions struct {
	// Force quotes the identifier even when it would be safe unquoted.
	Force bool
	// QuoteIdentifiers, when false, lets safe Postgres identifiers pass
	// through unquoted.
	QuoteIdentifiers bool
}

// defaultQuoteOptions are applied when no options are given.
var defaultQuoteOptions = QuoteOptions{Force: false, QuoteIdentifiers: true}

// RemoveTicks strips every occurrence of tick from s.
func RemoveTicks(s, tick string) string {
	return strings.ReplaceAll(s, tick, "")
}

// AddTicks wraps s in tick on both ends, stripping any ticks already present
// so that quoting is idempotent.
func AddTicks(s, tick string) string {
	return tick + RemoveTicks(s, tick) + tick
}

// mssqlStripper removes bracket and quote characters from MSSQL identifiers.
var mssqlStripper = strings.NewReplacer("[", "", "]", "", "'", "")

// QuoteIdentifier escapes identifier for the given dialect. The wildcard "*"
// passes through unchanged. An unrecognized dialect returns a
// sequelize.UnsupportedDialectError.
func QuoteIdentifier(dialect, identifier string, opts *QuoteOptions) (string, error) {
	if identifier == "*" {
		return identifier, nil
	}
	o := defaultQuoteOptions
	if opts != nil {
		o = *opts
	}
	switch dialect {
	case SQLite, MariaDB, MySQL:
		return AddTicks(identifier, "`"), nil
	case Postgres:
		rawIdentifier := RemoveTicks(identifier, `"`)
		if !o.Force &&
			!o.QuoteIdentifiers &&
			!strings.Contains(identifier, ".") &&
			!strings.Contains(identifier, "->") &&
			!IsReservedWord(rawIdentifier) {
			// Unquoted identifiers fold to lowercase on Postgres, which is
			// safe here because the matching is case-insensitive.
			return rawIdentifier, nil
		}
		return AddTicks(rawIdentifier, `"`), nil
	case MSSQL:
		return "[" + mssqlStripper.Replace(identifier) + "]", nil
	default:
		return "", sequelize.NewUnsupportedDialectError(dialect)
	}
}

// quotedIdentifierRe matches a string made entirely of quoted segments,
// optionally joined by dots, with doubled quote characters permitted inside
// a segment. RE2 has no backreference to bind the closing quote to the
// opening one, so the three quote characters are spelled out as alternations.
var quotedIdentifierRe = regexp.MustCompile(
	`^\s*(?:(?:` + "`" + `(?:[^` + "`" + `]|` + "``" + `)*` + "`" +
		`|"(?:[^"]|"")*"` +
		`|'(?:[^']|'')*')\.?)+\s*$`,
)

// IsIdentifierQuoted reports whether identifier is already wrapped in quote
// characters (backtick, double quote or single quote). Used to avoid
// double-quoting identifiers supplied pre-quoted.
func IsIdentifierQuoted(identifier string) bool {
	return quotedIdentifierRe.MatchString(identifier)
}
