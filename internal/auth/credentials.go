package auth

import (
	"errors"
	"fmt"

	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog/log"
)

var (
	ErrAccountNotFound    = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Register creates an account and provisions its default categories and people.
//
// Provisioning is best effort. If it fails, the account is still returned
// together with the error.
func Register(handle, secret string) (models.Account, error) {
	hash, err := HashSecret(secret)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Handle:       handle,
		PasswordHash: hash,
	}

	err = models.DB.Create(&account).Error
	if err != nil {
		return models.Account{}, err
	}

	err = models.SeedReferenceData(account.ID)
	if err != nil {
		return account, fmt.Errorf("account %s was created, but default data is incomplete: %w", account.Handle, err)
	}

	log.Info().Str("account", account.ID.String()).Msg("registered")
	return account, nil
}

// Authenticate returns the account for handle if secret matches.
//
// Unknown handles fail with ErrAccountNotFound, wrong secrets with ErrInvalidCredentials.
func Authenticate(handle, secret string) (models.Account, error) {
	account, err := models.AccountByHandle(handle)
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Account{}, ErrAccountNotFound
	} else if err != nil {
		return models.Account{}, err
	}

	if !CheckSecret(account.PasswordHash, secret) {
		return models.Account{}, ErrInvalidCredentials
	}

	return account, nil
}
