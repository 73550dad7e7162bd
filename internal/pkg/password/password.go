package password

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errors.New("password is empty")
	ErrMismatch = errors.New("password does not match")
)

// Hash accepts either a plaintext secret or an existing bcrypt hash, so ADMIN_PASSWORD may be stored pre-hashed.
func Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmpty
	}
	if IsHash(secret) {
		if _, err := bcrypt.Cost([]byte(secret)); err != nil {
			return "", err
		}
		return secret, nil
	}
	b, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func IsHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func Verify(hash, plain string) error {
	if plain == "" {
		return ErrEmpty
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
