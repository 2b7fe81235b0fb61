package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Account mirrors a row of the account table. Rows are created and
// updated outside this service; everything here is read-only.
type Account struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	ProfileImage  *string
	Role          string
	WalletBalance decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RoleUser marks accounts that show up in user listings.
const RoleUser = "USER"

// AccountView is the public projection of an Account. The password hash
// never appears here and the wallet balance is rendered as a string so
// no precision is lost on the wire.
type AccountView struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	WalletBalance string    `json:"wallet_balance"`
	CreatedAt     time.Time `json:"created_at"`
}

// View builds the public projection of the account.
func (a *Account) View() AccountView {
	return AccountView{
		ID:            a.ID,
		Username:      a.Username,
		Email:         a.Email,
		Role:          a.Role,
		WalletBalance: a.WalletBalance.String(),
		CreatedAt:     a.CreatedAt,
	}
}

// LoginFailure classifies why a login did not succeed. It drives the
// HTTP status chosen by the handler and is never serialized.
type LoginFailure int

const (
	LoginSucceeded LoginFailure = iota
	LoginInvalidInput
	LoginUnknownAccount
	LoginWrongPassword
)

// LoginOutcome is the result of a login attempt. Account is set iff
// Success is true.
type LoginOutcome struct {
	Success bool         `json:"success"`
	Account *AccountView `json:"account,omitempty"`
	Message string       `json:"message,omitempty"`
	Failure LoginFailure `json:"-"`
}

// AccountRepository is the sole gateway to the account table.
// Lookups return (nil, nil) when no row matches; errors are reserved
// for connectivity and query failures.
type AccountRepository interface {
	ListUsers(ctx context.Context) ([]Account, error)
	FindByIdentifier(ctx context.Context, identifier string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
}

// CredentialVerifier compares a plaintext secret against a stored hash.
// A malformed stored hash is reported as an error, a mismatch is not.
type CredentialVerifier interface {
	Verify(secret, hash string) (bool, error)
}
