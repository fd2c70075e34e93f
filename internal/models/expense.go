package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PeopleSeparator joins the names of multiple people in Expense.Person.
const PeopleSeparator = ", "

// Expense is a single logged expense of an account.
type Expense struct {
	DefaultModel
	AccountID uuid.UUID `json:"-" gorm:"type:uuid;not null;index"` // Owner of the expense, never changes
	Account   Account   `json:"-"`
	ExpenseCreate
}

// ExpenseCreate holds all fields of an expense that can be set by the owner.
type ExpenseCreate struct {
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"12.5"`     // The amount of the expense. Not validated, positive values are expected
	Description string          `json:"description" example:"Pizza with the team" default:""` // Free text description
	Category    string          `json:"category" example:"Lunch"`                             // Category name. Does not need to exist as category
	Person      string          `json:"person" example:"Me, Bob"`                             // Names of the people the expense is split with, joined by ", "
	Date        time.Time       `json:"date" gorm:"index" example:"2024-03-05T12:30:00Z"`     // Time of the expense, defaults to now
}

// People returns the individual names stored in Person.
func (e ExpenseCreate) People() []string {
	people := make([]string, 0)
	for _, name := range strings.Split(e.Person, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			people = append(people, name)
		}
	}

	return people
}

// JoinPeople joins names the way they are stored in Expense.Person.
func JoinPeople(names ...string) string {
	people := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			people = append(people, name)
		}
	}

	return strings.Join(people, PeopleSeparator)
}

// normalize trims whitespace, joins people with PeopleSeparator and sets the date to UTC.
func (e *ExpenseCreate) normalize() {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)
	e.Person = JoinPeople(e.People()...)
	e.Date = e.Date.In(time.UTC)
}

// AfterFind enforces the date to be in UTC.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - defaults the Date to now
//   - sets the timezone for the Date to UTC
//   - trims whitespace from string fields
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	e.normalize()

	return nil
}

// CreateExpense stores a new expense for the account.
func CreateExpense(accountID uuid.UUID, create ExpenseCreate) (Expense, error) {
	expense := Expense{
		AccountID:     accountID,
		ExpenseCreate: create,
	}

	err := DB.Create(&expense).Error
	if err != nil {
		return Expense{}, err
	}

	return expense, nil
}

// GetExpense returns the expense with the given ID if it is owned by the account.
//
// Expenses owned by other accounts are reported the same way as missing ones.
func GetExpense(accountID, id uuid.UUID) (Expense, error) {
	var expense Expense
	err := DB.Where("id = ? AND account_id = ?", id, accountID).First(&expense).Error
	if err != nil {
		return Expense{}, err
	}

	return expense, nil
}

// UpdateExpense replaces all editable fields of the expense.
//
// Only expenses owned by the account are updated. For all other IDs, no
// row is affected and no error is returned. The number of updated rows is returned.
func UpdateExpense(accountID, id uuid.UUID, update ExpenseCreate) (int64, error) {
	if update.Date.IsZero() {
		update.Date = time.Now()
	}
	update.normalize()

	// A map is used so that zero values (e.g. an empty description) are written, too
	result := DB.Model(&Expense{}).
		Session(&gorm.Session{SkipHooks: true}).
		Where("id = ? AND account_id = ?", id, accountID).
		Updates(map[string]any{
			"amount":      update.Amount,
			"description": update.Description,
			"category":    update.Category,
			"person":      update.Person,
			"date":        update.Date,
			"updated_at":  time.Now().In(time.UTC),
		})

	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		log.Debug().Str("expense", id.String()).Str("account", accountID.String()).Msg("update did not match an owned expense")
	}

	return result.RowsAffected, nil
}

// DeleteExpense deletes the expense if it is owned by the account.
//
// Like UpdateExpense, this is a no-op for IDs the account does not own.
func DeleteExpense(accountID, id uuid.UUID) (int64, error) {
	result := DB.Where("id = ? AND account_id = ?", id, accountID).Delete(&Expense{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// EarliestExpenseDate returns the date of the oldest expense of the account.
//
// If the account does not have any expenses, nil is returned.
func EarliestExpenseDate(accountID uuid.UUID) (*time.Time, error) {
	var expenses []Expense
	err := DB.Where("account_id = ?", accountID).Order("date ASC").Limit(1).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	if len(expenses) == 0 {
		return nil, nil
	}

	return &expenses[0].Date, nil
}
