package service

import (
	"context"
	"log/slog"
	"strings"

	"gamestore-api/internal/domain"
	"gamestore-api/internal/errors"
)

// AccountService exposes the read-only account queries behind /users.
type AccountService struct {
	accounts domain.AccountRepository
	logger   *slog.Logger
}

func NewAccountService(accounts domain.AccountRepository, logger *slog.Logger) *AccountService {
	return &AccountService{
		accounts: accounts,
		logger:   logger,
	}
}

// ListUsers returns the projections of every USER-role account, newest
// first. Ordering and filtering are done by the store.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.AccountView, error) {
	accounts, err := s.accounts.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.AccountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, accounts[i].View())
	}
	return views, nil
}

// GetAccount returns the projection for one account id, or
// errors.ErrAccountNotFound when no row matches.
func (s *AccountService) GetAccount(ctx context.Context, id string) (*domain.AccountView, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewAppError(errors.ValidationError, "account id is required")
	}

	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.ErrAccountNotFound
	}

	view := account.View()
	return &view, nil
}
