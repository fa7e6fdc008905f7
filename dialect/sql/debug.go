package sql

import (
	"context"
	"log/slog"

	"github.com/yocontra/sequelize/dialect"
)

// DebugDriver wraps a dialect.Driver and logs every operation with slog.
type DebugDriver struct {
	dialect.Driver
	log *slog.Logger
}

// Debug wraps drv with query logging on the default slog logger.
func Debug(drv dialect.Driver) *DebugDriver {
	return DebugWith(drv, slog.Default())
}

// DebugWith wraps drv with query logging on the given logger.
func DebugWith(drv dialect.Driver, logger *slog.Logger) *DebugDriver {
	return &DebugDriver{Driver: drv, log: logger}
}

// Exec logs its params and calls the underlying driver.
func (d *DebugDriver) Exec(ctx context.Context, query string, args, v any) error {
	d.log.InfoContext(ctx, "exec", "query", query, "args", args)
	return d.Driver.Exec(ctx, query, args, v)
}

// Query logs its params and calls the underlying driver.
func (d *DebugDriver) Query(ctx context.Context, query string, args, v any) error {
	d.log.InfoContext(ctx, "query", "query", query, "args", args)
	return d.Driver.Query(ctx, query, args, v)
}

// Tx starts a logged transaction.
func (d *DebugDriver) Tx(ctx context.Context) (dialect.Tx, error) {
	tx, err := d.Driver.Tx(ctx)
	if err != nil {
		return nil, err
	}
	d.log.InfoContext(ctx, "transaction started")
	return &DebugTx{Tx: tx, log: d.log, ctx: ctx}, nil
}

// DebugTx wraps a dialect.Tx with logging.
type DebugTx struct {
	dialect.Tx
	log *slog.Logger
	ctx context.Context
}

// Exec logs its params and calls the underlying transaction.
func (tx *DebugTx) Exec(ctx context.Context, query string, args, v any) error {
	tx.log.InfoContext(ctx, "tx exec", "query", query, "args", args)
	return tx.Tx.Exec(ctx, query, args, v)
}

// Query logs its params and calls the underlying transaction.
func (tx *DebugTx) Query(ctx context.Context, query string, args, v any) error {
	tx.log.InfoContext(ctx, "tx query", "query", query, "args", args)
	return tx.Tx.Query(ctx, query, args, v)
}

// Commit logs and commits the transaction.
func (tx *DebugTx) Commit() error {
	tx.log.InfoContext(tx.ctx, "transaction committed")
	return tx.Tx.Commit()
}

// Rollback logs and rolls back the transaction.
func (tx *DebugTx) Rollback() error {
	tx.log.InfoContext(tx.ctx, "transaction rolled back")
	return tx.Tx.Rollback()
}

var (
	_ dialect.Driver = (*DebugDriver)(nil)
	_ dialect.Tx     = (*DebugTx)(nil)
)
