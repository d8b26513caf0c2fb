package registry

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured
const DefaultCost = 10

// errPasswordMismatch is returned by a PasswordHasher when the password does
// not match the hash
var errPasswordMismatch = bcrypt.ErrMismatchedHashAndPassword

// PasswordHasher hashes passwords and verifies them against stored hashes.
// Compare must return bcrypt.ErrMismatchedHashAndPassword on a mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// BcryptHasher is the bcrypt implementation of PasswordHasher
type BcryptHasher struct {
	Cost int
}

// Hash returns a salted bcrypt hash of password
func (b BcryptHasher) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks password against hash in constant time
func (b BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func isMismatch(err error) bool {
	return errors.Is(err, errPasswordMismatch)
}
