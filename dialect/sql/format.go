package sql

// Formatter is the contract of the SQL string templating engine that
// substitutes bound parameters into query fragments. It is consumed by the
// query builder as a black box; implementations live with the per-dialect
// query generators.
type Formatter interface {
	// Format substitutes positional placeholders across the fragments and
	// returns the assembled SQL string for the given dialect.
	Format(fragments []string, dialect string) (string, error)
	// FormatNamed substitutes named parameters into the query string.
	FormatNamed(query string, params map[string]any, dialect string) (string, error)
}
