package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ExportWindow is the period exported when no explicit range is requested.
	ExportWindow = 30 * 24 * time.Hour

	// ExportDefaultLimit caps the number of expenses exported when no explicit
	// range is requested. Explicit ranges are not capped.
	ExportDefaultLimit = 100
)

// ExportRange limits an export to expenses with Start <= Date <= End.
type ExportRange struct {
	Start time.Time
	End   time.Time
}

// Validate checks that the range is not inverted.
func (r ExportRange) Validate() error {
	if r.Start.After(r.End) {
		return ErrInvalidRange
	}

	return nil
}

// ExportExpenses selects the expenses of the account for an export, newest first.
//
// Without a range, all expenses from ExportWindow before now on are selected, at
// most ExportDefaultLimit. With a range, all expenses in the range are selected.
// The range is not checked against the earliest expense of the account.
func ExportExpenses(accountID uuid.UUID, r *ExportRange, now time.Time) ([]Expense, error) {
	q := DB.Where("account_id = ?", accountID).Order(historyOrder)

	if r == nil {
		q = q.Where("date >= ?", now.Add(-ExportWindow).In(time.UTC)).Limit(ExportDefaultLimit)
	} else {
		if err := r.Validate(); err != nil {
			return nil, err
		}

		q = q.Where("date >= ? AND date <= ?", r.Start.In(time.UTC), r.End.In(time.UTC))
	}

	expenses := make([]Expense, 0)
	err := q.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
