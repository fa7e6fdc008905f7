// Package dialect provides database dialect abstraction for the Sequelize
// ORM.
//
// This package defines the dialect tags, the driver contracts and the
// identifier-quoting rules used for database-specific SQL generation.
//
// # Supported Dialects
//
// The following dialects are supported:
//
//   - SQLite: SQLite database
//   - MariaDB: MariaDB database
//   - MySQL: MySQL database
//   - Postgres: PostgreSQL database
//   - MSSQL: Microsoft SQL Server database
//
// Each dialect is identified by a constant string:
//
//	dialect.SQLite   = "sqlite"
//	dialect.MariaDB  = "mariadb"
//	dialect.MySQL    = "mysql"
//	dialect.Postgres = "postgres"
//	dialect.MSSQL    = "mssql"
//
// # Identifier Quoting
//
// QuoteIdentifier escapes a table or column name with the delimiter of the
// target dialect:
//
//	dialect.QuoteIdentifier(dialect.MySQL, "users", nil)    // `users`
//	dialect.QuoteIdentifier(dialect.Postgres, "user", nil)  // "user"
//	dialect.QuoteIdentifier(dialect.MSSQL, "users", nil)    // [users]
//
// For Postgres, quoting may be skipped for identifiers that are safe to use
// unquoted (no dots, no JSON arrows, not a reserved word) when the caller
// opts out via QuoteOptions:
//
//	dialect.QuoteIdentifier(dialect.Postgres, "name", &dialect.QuoteOptions{})
//	// name
//
// An unrecognized dialect is a hard error (sequelize.UnsupportedDialectError).
//
// # Driver Interface
//
// The package defines the Driver interface for database operations:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The Tx interface extends ExecQuerier with transaction methods, and the
// ExecQuerier interface is implemented by both Driver and Tx. The default
// implementation over database/sql lives in the dialect/sql sub-package.
package dialect
