// Package hash provides one-way password hashing. Hashing is an explicit
// step owned by the handlers on every password write path (signup, edit,
// reset); the store never hashes, so a value can neither be double-hashed
// nor slip through in plaintext.
package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrFailedToHashPassword = errors.New("failed to hash password")

type HashService struct {
	cost int
}

func NewHashService() *HashService {
	return &HashService{cost: bcrypt.DefaultCost}
}

// Hash returns a bcrypt hash of the plaintext password.
func (hs *HashService) Hash(password string) ([]byte, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), hs.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToHashPassword, err)
	}
	return h, nil
}

// Verify reports whether the plaintext password matches the stored hash.
func (hs *HashService) Verify(password string, hashed []byte) bool {
	return bcrypt.CompareHashAndPassword(hashed, []byte(password)) == nil
}
