package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/hoikuplan/internal/db"
)

// FailOnNthExecUoW is a UnitOfWork whose transaction fails the Nth
// ExecContext call (1-based) with Err. A form save issues the snapshot
// insert first and the retention delete second. Reads are not counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	uow := db.NewSQLiteUnitOfWork(u.DB, db.WithTxWrapper(func(tx db.DBTX) db.DBTX {
		return &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err}
	}))
	return uow.WithinTx(ctx, fn)
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
