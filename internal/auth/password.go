package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt cost used for new password hashes.
var Cost = bcrypt.DefaultCost

var (
	ErrSecretEmpty   = errors.New("secret must not be empty")
	ErrSecretTooLong = errors.New("secret must not be longer than 72 bytes")
)

// HashSecret returns the bcrypt hash of the secret.
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", ErrSecretEmpty
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), Cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrSecretTooLong
	} else if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	return string(hash), nil
}

// CheckSecret reports whether secret matches the bcrypt hash.
func CheckSecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
