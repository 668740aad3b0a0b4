package db

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so a snapshot repository
// can run inside or outside a unit of work.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// UnitOfWork runs fn inside one transaction. A form save appends its
// snapshot and prunes old ones through the DBTX passed to fn.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// UnitOfWorkOption customizes a SQLiteUnitOfWork.
type UnitOfWorkOption func(*SQLiteUnitOfWork)

// WithTxWrapper decorates the transaction handed to fn. Tests use it to
// inject write failures.
func WithTxWrapper(wrap func(DBTX) DBTX) UnitOfWorkOption {
	return func(u *SQLiteUnitOfWork) { u.wrap = wrap }
}

// SQLiteUnitOfWork is a UnitOfWork over database/sql transactions.
type SQLiteUnitOfWork struct {
	db   *sql.DB
	wrap func(DBTX) DBTX
}

func NewSQLiteUnitOfWork(db *sql.DB, opts ...UnitOfWorkOption) *SQLiteUnitOfWork {
	u := &SQLiteUnitOfWork{db: db}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// WithinTx commits when fn returns nil and rolls back on error or panic.
func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	var conn DBTX = tx
	if u.wrap != nil {
		conn = u.wrap(tx)
	}
	if err := fn(ctx, conn); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rolling back after %w: %v", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
