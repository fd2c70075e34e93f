package models

import (
	"strings"

	"gorm.io/gorm"
)

// Account is a registered user. It owns its categories, people and expenses.
type Account struct {
	DefaultModel
	Handle       string `json:"handle" gorm:"uniqueIndex;not null" example:"alice"` // Unique login handle
	PasswordHash string `json:"-" gorm:"not null"`                                  // bcrypt hash of the secret
}

// BeforeSave trims whitespace from the handle and rejects empty handles.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Handle = strings.TrimSpace(a.Handle)
	if a.Handle == "" {
		return ErrHandleEmpty
	}

	return nil
}

// AccountByHandle returns the account with the given handle.
//
// If no account exists, the error wraps ErrResourceNotFound.
func AccountByHandle(handle string) (Account, error) {
	var account Account
	err := DB.Where("handle = ?", strings.TrimSpace(handle)).First(&account).Error
	if err != nil {
		return Account{}, err
	}

	return account, nil
}
