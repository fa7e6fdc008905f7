// Package sequelize provides the dialect-aware foundation of the Sequelize
// ORM: identifier quoting per target database, SQL value wrappers, and
// the field-name mapping used when compiling finder options into queries.
//
// # Supported Dialects
//
// Five SQL dialects are supported, identified by constants in the dialect
// sub-package:
//
//	dialect.SQLite   = "sqlite"
//	dialect.MariaDB  = "mariadb"
//	dialect.MySQL    = "mysql"
//	dialect.Postgres = "postgres"
//	dialect.MSSQL    = "mssql"
//
// Quoting an identifier for a dialect:
//
//	quoted, err := dialect.QuoteIdentifier(dialect.MySQL, "users", nil)
//	// quoted == "`users`"
//
// # Value Wrappers
//
// The dialect/sql sub-package defines typed markers for SQL constructs that
// a query builder must not treat as plain data: function calls (Fn), raw
// column references (Col), type casts (Cast), raw fragments (Literal), JSON
// accessors (JSON) and raw predicates (Where). All of them implement the
// sql.Expr marker and carry their own clone rule, so generic deep-cloning of
// option trees preserves them intact.
//
// # Field-Name Mapping
//
// The model sub-package translates logical attribute names into physical
// column names across attribute lists, where clauses and value maps:
//
//	model.MapFinderOptions(opts, m)
//	model.MapValueFieldNames(values, fields, m)
//
// Where clauses are maps keyed by op.Key, a union of plain attribute names
// and operator tags from the op sub-package.
//
// # Sub-packages
//
//   - dialect: dialect tags, driver contracts, identifier quoting
//   - dialect/sql: value wrappers and the database/sql driver implementation
//   - op: operator registry and complex where-clause keys
//   - schema/field: data-type tags and default-value sentinels
//   - model: model contract and field-name mapping
//   - utils: generic merge, clone, flatten and naming helpers
package sequelize
