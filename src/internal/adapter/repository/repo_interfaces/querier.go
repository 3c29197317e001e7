package repo_interfaces

import (
	"context"
	"database/sql"
)

// Querier is the statement surface shared by *sql.DB and *sql.Tx. Repository
// methods that must run inside the caller's unit of work take one explicitly
// instead of reaching for a process-wide handle.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Tx is one atomic unit of work. *sql.Tx satisfies it directly.
type Tx interface {
	Querier
	Commit() error
	Rollback() error
}

type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}
