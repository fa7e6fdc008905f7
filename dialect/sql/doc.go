// Package sql provides the SQL-fragment layer of the Sequelize ORM:
// typed value wrappers for SQL constructs, the formatting-engine contract,
// and a dialect.Driver implementation over database/sql.
//
// # Value Wrappers
//
// Value wrappers mark parts of an options tree that a query builder must
// compile into SQL instead of treating as plain data:
//
//	sql.NewFn("upper", sql.NewCol("name"))   // upper("name")
//	sql.NewCast(sql.NewCol("age"), "text")   // CAST("age" AS text)
//	sql.NewLiteral("COUNT(*)")               // raw fragment
//	sql.NewWhere(sql.NewCol("deleted_at"), nil)
//
// All wrappers implement the Expr marker and carry their own clone rule,
// which generic deep-cloning dispatches to instead of recursing key-by-key.
//
// # Driver
//
// Opening a database connection:
//
//	drv, err := sql.Open(dialect.Postgres, "postgres://...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//
// The driver can be wrapped for query logging:
//
//	var logged dialect.Driver = sql.Debug(drv)
package sql
