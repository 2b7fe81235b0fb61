package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"gamestore-api/internal/domain"
	apperrors "gamestore-api/internal/errors"
)

// BcryptVerifier checks plaintext secrets against stored bcrypt hashes.
// bcrypt is adaptive-work-factor and its comparison is constant-effort,
// so both brute forcing and timing probes stay expensive.
type BcryptVerifier struct{}

var _ domain.CredentialVerifier = BcryptVerifier{}

func NewBcryptVerifier() BcryptVerifier {
	return BcryptVerifier{}
}

// Verify reports whether secret matches hash. A mismatch is a normal
// false result; anything else means the stored hash itself is broken.
func (BcryptVerifier) Verify(secret, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, apperrors.NewAppError(apperrors.HashFormatError, "stored credential hash is malformed").
			WithDetails(err.Error())
	}
}

// HashPassword produces a bcrypt hash at the default cost. Account
// writes live outside this service; this exists for seeds and tests.
func HashPassword(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
