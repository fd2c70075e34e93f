package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

// DefaultPerson is the person every account starts with. It can not be deleted.
const DefaultPerson = "Me"

// DefaultCategories are provisioned for every new account.
var DefaultCategories = []string{"Lunch", "Dinner", "Travel", "Bills", "Snacks"}

// protectedPeople can never be deleted from an account.
var protectedPeople = []string{DefaultPerson}

// Category is a named expense category of an account.
//
// Expenses reference categories by name only, deleting a category
// does not modify any expense.
type Category struct {
	ID        uint      `json:"-" gorm:"primaryKey"` // Autoincrement, gives the insertion order
	AccountID uuid.UUID `json:"-" gorm:"type:uuid;not null;uniqueIndex:category_account_name"`
	Account   Account   `json:"-"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:category_account_name" example:"Lunch"`
	CreatedAt time.Time `json:"-"`
}

// Person is somebody an account splits expenses with.
//
// Like categories, people are referenced by name only.
type Person struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	AccountID uuid.UUID `json:"-" gorm:"type:uuid;not null;uniqueIndex:person_account_name"`
	Account   Account   `json:"-"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:person_account_name" example:"Me"`
	CreatedAt time.Time `json:"-"`
}

// AddCategory adds a category to the account. Adding an existing name is a no-op.
func AddCategory(accountID uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameEmpty
	}

	return addReference(&Category{AccountID: accountID, Name: name})
}

// AddPerson adds a person to the account. Adding an existing name is a no-op.
func AddPerson(accountID uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameEmpty
	}

	return addReference(&Person{AccountID: accountID, Name: name})
}

// ListCategories returns the category names of the account in insertion order.
func ListCategories(accountID uuid.UUID) ([]string, error) {
	return listReferences(&Category{}, accountID)
}

// ListPeople returns the names of the people of the account in insertion order.
func ListPeople(accountID uuid.UUID) ([]string, error) {
	return listReferences(&Person{}, accountID)
}

// DeleteCategory removes the named category of the account. Unknown names are ignored.
func DeleteCategory(accountID uuid.UUID, name string) error {
	return deleteReference(&Category{}, accountID, name)
}

// DeletePerson removes the named person of the account. Unknown names are ignored,
// the default person can not be deleted.
func DeletePerson(accountID uuid.UUID, name string) error {
	if slices.Contains(protectedPeople, strings.TrimSpace(name)) {
		return ErrProtectedPerson
	}

	return deleteReference(&Person{}, accountID, name)
}

// SeedReferenceData provisions the default categories and the default person.
//
// Seeding is best effort: every item is attempted and all failures are returned
// together. Items that were created stay in place.
func SeedReferenceData(accountID uuid.UUID) error {
	var errs []error
	for _, name := range DefaultCategories {
		if err := AddCategory(accountID, name); err != nil {
			errs = append(errs, fmt.Errorf("category %q: %w", name, err))
		}
	}

	if err := AddPerson(accountID, DefaultPerson); err != nil {
		errs = append(errs, fmt.Errorf("person %q: %w", DefaultPerson, err))
	}

	if len(errs) > 0 {
		log.Warn().Str("account", accountID.String()).Errs("errors", errs).Msg("seeding reference data incomplete")
	}

	return errors.Join(errs...)
}

func addReference(item any) error {
	return DB.Clauses(clause.OnConflict{DoNothing: true}).Create(item).Error
}

func listReferences(model any, accountID uuid.UUID) ([]string, error) {
	names := make([]string, 0)
	err := DB.Model(model).Where("account_id = ?", accountID).Order("id ASC").Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}

	return names, nil
}

func deleteReference(model any, accountID uuid.UUID, name string) error {
	return DB.Where("account_id = ? AND name = ?", accountID, strings.TrimSpace(name)).Delete(model).Error
}
