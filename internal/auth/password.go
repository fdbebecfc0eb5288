package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor for new hashes. Each hash embeds its
// own random salt, so identical passwords produce distinct hashes.
const defaultCost = 12

// PasswordService hashes and verifies passwords with bcrypt. The cost is a
// field so tests can inject the minimum cost and skip the deliberate
// slowness of the production setting.
type PasswordService struct {
	cost int
}

// NewPasswordService returns a PasswordService with the production cost.
func NewPasswordService() *PasswordService {
	return &PasswordService{cost: defaultCost}
}

// NewPasswordServiceWithCost returns a PasswordService with a custom bcrypt
// cost. Intended for tests; do not lower the cost in production.
func NewPasswordServiceWithCost(cost int) *PasswordService {
	return &PasswordService{cost: cost}
}

// Hash returns a self-contained bcrypt hash of the plaintext, suitable for
// storing directly in the password_hash column.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	// bcrypt silently truncates inputs beyond 72 bytes; reject instead.
	if len(plaintext) > 72 {
		return "", errors.New("auth: password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. The comparison
// is constant-time. Returns a non-nil error on mismatch.
func (p *PasswordService) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return errors.New("auth: password mismatch")
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
