package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"gamestore-api/internal/domain"
)

// Store is the single gateway to the database. Handlers and services
// never touch the pool directly; they go through the repositories this
// hands out.
type Store struct {
	executor SQLExecutor
	logger   *slog.Logger
}

// NewStore creates a new Store bound to the given pool handle. The pool
// is injected so tests can point a store at an isolated database.
func NewStore(db SQLExecutor, logger *slog.Logger) *Store {
	return &Store{
		executor: db,
		logger:   logger,
	}
}

// Accounts returns the account repository backed by this store's pool.
func (s *Store) Accounts() domain.AccountRepository {
	return NewAccountRepository(s.executor, s.logger)
}

// Ping verifies database connectivity, used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	if db, ok := s.executor.(*sql.DB); ok {
		return db.PingContext(ctx)
	}
	return nil
}
