package repository

import (
	"context"
	"database/sql"
)

// SQLExecutor is the slice of *sql.DB the repositories need. Queries
// carry the request context so a dropped client abandons its round trip
// without poisoning the pool.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Ensure sql.DB implements SQLExecutor
var _ SQLExecutor = (*sql.DB)(nil)
