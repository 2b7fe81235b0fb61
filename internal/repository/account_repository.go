package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/shopspring/decimal"

	"gamestore-api/internal/domain"
	"gamestore-api/internal/errors"
)

type accountRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewAccountRepository(db SQLExecutor, logger *slog.Logger) domain.AccountRepository {
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

const accountColumns = `id, username, email, password_hash, profile_image, role, wallet_balance, created_at, updated_at`

// ListUsers returns every account with the USER role, newest first.
func (r *accountRepository) ListUsers(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM account
		WHERE role = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, domain.RoleUser)
	if err != nil {
		r.logger.Error("Failed to list users", "error", err)
		return nil, errors.NewAppError(errors.StoreError, "failed to list users").WithDetails(err.Error())
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccountRow(rows.Scan)
		if err != nil {
			r.logger.Error("Failed to scan account row", "error", err)
			return nil, errors.NewAppError(errors.StoreError, "failed to read account row").WithDetails(err.Error())
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Account row iteration failed", "error", err)
		return nil, errors.NewAppError(errors.StoreError, "failed to read account rows").WithDetails(err.Error())
	}

	return accounts, nil
}

// FindByIdentifier resolves a username or email to an account. When the
// same string is one row's username and another row's email, the
// username match wins. Absence is (nil, nil), not an error.
func (r *accountRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM account
		WHERE username = $1 OR email = $1
		ORDER BY (username = $1) DESC
		LIMIT 1
	`

	return r.findOne(ctx, query, identifier)
}

// FindByID looks up an account by its exact id. Absence is (nil, nil).
func (r *accountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM account
		WHERE id = $1
	`

	return r.findOne(ctx, query, id)
}

func (r *accountRepository) findOne(ctx context.Context, query string, arg string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	account, err := scanAccountRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to fetch account", "error", err)
		return nil, errors.NewAppError(errors.StoreError, "failed to fetch account").WithDetails(err.Error())
	}
	return account, nil
}

// scanAccountRow maps one account row. The wallet balance is scanned as
// text and parsed into a decimal so NUMERIC values keep full precision.
func scanAccountRow(scan func(dest ...interface{}) error) (*domain.Account, error) {
	var account domain.Account
	var balanceStr string
	var profileImage sql.NullString

	err := scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&profileImage,
		&account.Role,
		&balanceStr,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, err
	}
	account.WalletBalance = balance

	if profileImage.Valid {
		account.ProfileImage = &profileImage.String
	}

	return &account, nil
}
