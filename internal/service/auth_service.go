package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"gamestore-api/internal/domain"
)

// AuthService owns the login pipeline. It is the only place identity
// resolution and secret verification are combined.
type AuthService struct {
	accounts domain.AccountRepository
	verifier domain.CredentialVerifier
	logger   *slog.Logger
}

func NewAuthService(accounts domain.AccountRepository, verifier domain.CredentialVerifier, logger *slog.Logger) *AuthService {
	return &AuthService{
		accounts: accounts,
		verifier: verifier,
		logger:   logger,
	}
}

const minPasswordLength = 6

// Login runs validate → resolve → verify → project and stops at the
// first failing step. Bad input and bad credentials are outcomes, not
// errors; only store and hash failures come back as an error.
// The plaintext password is never logged.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.LoginOutcome, error) {
	if msg := validateLogin(identifier, password); msg != "" {
		return &domain.LoginOutcome{
			Success: false,
			Message: msg,
			Failure: domain.LoginInvalidInput,
		}, nil
	}

	account, err := s.accounts.FindByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, err
	}
	if account == nil {
		s.logger.Info("Login attempt for unknown identifier", "identifier", identifier)
		return &domain.LoginOutcome{
			Success: false,
			Message: "account not found",
			Failure: domain.LoginUnknownAccount,
		}, nil
	}

	matches, err := s.verifier.Verify(password, account.PasswordHash)
	if err != nil {
		s.logger.Error("Credential verification failed", "account_id", account.ID, "error", err)
		return nil, err
	}
	if !matches {
		s.logger.Info("Login attempt with wrong password", "account_id", account.ID)
		return &domain.LoginOutcome{
			Success: false,
			Message: "invalid credentials",
			Failure: domain.LoginWrongPassword,
		}, nil
	}

	view := account.View()
	s.logger.Info("Login succeeded", "account_id", account.ID, "username", account.Username)
	return &domain.LoginOutcome{
		Success: true,
		Account: &view,
		Message: "login succeeded",
	}, nil
}

// GetProfile fetches the public view of an account by id. A missing
// account is a normal (nil, nil) result.
func (s *AuthService) GetProfile(ctx context.Context, id string) (*domain.AccountView, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	view := account.View()
	return &view, nil
}

func validateLogin(identifier, password string) string {
	if strings.TrimSpace(identifier) == "" {
		return "identifier is required"
	}
	trimmed := strings.TrimSpace(password)
	if trimmed == "" {
		return "password is required"
	}
	if utf8.RuneCountInString(trimmed) < minPasswordLength {
		return "password must be at least 6 characters"
	}
	return ""
}
