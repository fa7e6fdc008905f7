package dialect

import "context"

// Dialect names of the supported databases.
const (
	// SQLite is the sqlite dialect.
	SQLite = "sqlite"
	// MariaDB is the mariadb dialect.
	MariaDB = "mariadb"
	// MySQL is the mysql dialect.
	MySQL = "mysql"
	// Postgres is the postgres dialect.
	Postgres = "postgres"
	// MSSQL is the Microsoft SQL Server dialect.
	MSSQL = "mssql"
)

// All returns the names of all supported dialects.
func All() []string {
	return []string{SQLite, MariaDB, MySQL, Postgres, MSSQL}
}

// Valid reports whether name is a supported dialect.
func Valid(name string) bool {
	switch name {
	case SQLite, MariaDB, MySQL, Postgres, MSSQL:
		return true
	}
	return false
}

// ExecQuerier wraps the two basic Exec and Query methods.
type ExecQuerier interface {
	// Exec executes a query that does not return records. For example, in SQL, INSERT or UPDATE.
	// It scans the result into the pointer v. For SQL drivers, it is dialect/sql.Result.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a query that returns rows, typically a SELECT in SQL.
	// It scans the result into the pointer v. For SQL drivers, it is *dialect/sql.Rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all necessary operations for a
// database driver.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	// The provided context is used until the transaction is committed or rolled back.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps the Exec and Query operations in a transaction.
type Tx interface {
	ExecQuerier
	// Commit commits the transaction.
	Commit() error
	// Rollback rolls back the transaction.
	Rollback() error
}
