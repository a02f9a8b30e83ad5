package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies passwords with bcrypt, optionally
// peppered with a global secret.
type PasswordHasher struct {
	cost   int
	pepper string
}

// NewPasswordHasher creates a hasher. Cost must lie in [10,14]; zero picks
// the default of 12.
func NewPasswordHasher(cost int, pepper string) (*PasswordHasher, error) {
	if cost == 0 {
		cost = 12
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}
	return &PasswordHasher{cost: cost, pepper: pepper}, nil
}

// Hash hashes a password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password+h.pepper), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether a password matches a stored hash.
func (h *PasswordHasher) Verify(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password+h.pepper)) == nil
}
