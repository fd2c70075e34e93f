package models

import (
	"math"

	"github.com/google/uuid"
)

// PageSize is the number of expenses in one page of the history.
const PageSize = 10

// historyOrder sorts expenses newest first. Expenses with the same date are
// sorted by insertion, newest first. The ID makes the order total so that
// pages never overlap.
const historyOrder = "expenses.date DESC, expenses.created_at DESC, expenses.id DESC"

// ExpensePage returns the page with the zero-based index page of the expense
// history of the account.
//
// There is no total count. A page with less than PageSize expenses is the last one,
// pages after it are empty.
func ExpensePage(accountID uuid.UUID, page int) ([]Expense, error) {
	if page < 0 {
		page = 0
	}

	// The offset would overflow, no page can be that far back
	if page > math.MaxInt/PageSize {
		return make([]Expense, 0), nil
	}

	expenses := make([]Expense, 0)
	err := DB.
		Where("account_id = ?", accountID).
		Order(historyOrder).
		Limit(PageSize).
		Offset(page * PageSize).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
