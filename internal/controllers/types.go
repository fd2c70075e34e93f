package controllers

import (
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/uuid"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIName struct {
	Name string `uri:"name" binding:"required" example:"Bob"` // Name of the category or person
}

// Response is the body of all responses without data.
type Response struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message,omitempty" example:"Saved successfully"`
}

type Credentials struct {
	Handle string `json:"handle" example:"alice"`  // Login handle of the account
	Secret string `json:"secret" example:"s3cret"` // Secret of the account
}

type LoginResponse struct {
	Status string `json:"status" example:"success"`
	Token  string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Bearer token for all authenticated endpoints
	Handle string `json:"handle" example:"alice"`
}

type InitResponse struct {
	Status     string   `json:"status" example:"success"`
	People     []string `json:"people" example:"Me,Bob"`                        // People in insertion order
	Categories []string `json:"categories" example:"Lunch,Dinner,Travel,Bills"` // Categories in insertion order
}

type ReferenceEditable struct {
	Name string `json:"name" example:"Groceries"`
}

// Transaction is the API representation of an expense.
type Transaction struct {
	models.DefaultModel
	models.ExpenseCreate
}

func newTransaction(e models.Expense) Transaction {
	return Transaction{
		DefaultModel:  e.DefaultModel,
		ExpenseCreate: e.ExpenseCreate,
	}
}

func newTransactions(expenses []models.Expense) []Transaction {
	// Empty lists are marshalled to [], not null
	transactions := make([]Transaction, 0, len(expenses))
	for _, e := range expenses {
		transactions = append(transactions, newTransaction(e))
	}

	return transactions
}

type TransactionResponse struct {
	Status      string      `json:"status" example:"success"`
	Transaction Transaction `json:"transaction"`
}

type TransactionListResponse struct {
	Status       string        `json:"status" example:"success"`
	Transactions []Transaction `json:"transactions"`
}

type MetaResponse struct {
	Status    string     `json:"status" example:"success"`
	FirstDate *time.Time `json:"firstDate" example:"2023-01-05T12:00:00Z"` // Date of the oldest expense. null if there are none
}

type ExportQuery struct {
	StartDate string `form:"startDate" example:"2024-01-01"`  // Start of a custom export, YYYY-MM-DD or RFC3339
	EndDate   string `form:"endDate" example:"2024-01-31"`    // End of a custom export, YYYY-MM-DD or RFC3339. Dates include the whole day
	Format    string `form:"format" example:"csv"`            // json (default) or csv
	Locale    string `form:"locale" example:"en-US"`          // Locale for CSV dates. Defaults to the Accept-Language header
	Timezone  string `form:"timezone" example:"Europe/Berlin"` // Time zone for CSV dates and for date-only bounds
}
