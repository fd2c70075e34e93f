package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
)

var (
	ErrMissingToken = errors.New("access denied")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenManager issues and validates the bearer tokens of sessions.
type TokenManager struct {
	secret   []byte
	validity time.Duration
}

// Claims are the claims of a session token.
type Claims struct {
	AccountID string `json:"accountId"`
	Handle    string `json:"handle"`
	jwt.RegisteredClaims
}

// NewTokenManager creates a TokenManager signing with secret. Tokens expire after validity.
func NewTokenManager(secret string, validity time.Duration) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		validity: validity,
	}
}

// Generate issues a token for the account.
func (m *TokenManager) Generate(account models.Account) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: account.ID.String(),
		Handle:    account.Handle,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Validate parses the token and returns its claims.
//
// All failures wrap ErrInvalidToken.
func (m *TokenManager) Validate(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := uuid.Parse(claims.AccountID); err != nil {
		return nil, fmt.Errorf("%w: account id: %v", ErrInvalidToken, err)
	}

	return claims, nil
}
