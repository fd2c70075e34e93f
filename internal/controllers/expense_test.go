package controllers_test

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/controllers"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenseLifecycle() {
	token := suite.registerAndLogin("alice", "pw1")
	date := time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/expenses", `{
		"amount": 12.50,
		"description": "Pizza",
		"category": "Lunch",
		"person": "Me, Bob",
		"date": "2024-03-05T12:30:00Z"
	}`, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"status": "success", "message": "Saved successfully"}`, r.Body.String())

	history := suite.history(token)
	suite.Require().Len(history, 1)
	created := history[0]
	suite.Assert().True(decimal.NewFromFloat(12.5).Equal(created.Amount))
	suite.Assert().Equal("Pizza", created.Description)
	suite.Assert().Equal("Lunch", created.Category)
	suite.Assert().Equal("Me, Bob", created.Person)
	suite.Assert().True(date.Equal(created.Date))

	// Get
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/"+created.ID.String(), nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var detail controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &detail)
	suite.Assert().Equal(created.ID, detail.Transaction.ID)

	// Update replaces all fields
	update := models.ExpenseCreate{
		Amount:      decimal.NewFromInt(20),
		Description: "Dinner with Bob",
		Category:    "Dinner",
		Person:      "Bob",
		Date:        date.AddDate(0, 0, 1),
	}
	r = test.Request(suite.T(), http.MethodPut, "http://example.com/api/expenses/"+created.ID.String(), update, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"status": "success", "message": "Updated successfully"}`, r.Body.String())

	history = suite.history(token)
	suite.Require().Len(history, 1)
	suite.Assert().Equal(created.ID, history[0].ID)
	suite.Assert().True(update.Amount.Equal(history[0].Amount))
	suite.Assert().Equal("Dinner", history[0].Category)
	suite.Assert().True(update.Date.Equal(history[0].Date))

	// Delete
	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/expenses/"+created.ID.String(), nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"status": "success", "message": "Deleted successfully"}`, r.Body.String())

	suite.Assert().Len(suite.history(token), 0)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/"+created.ID.String(), nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDefaultDate() {
	token := suite.registerAndLogin("alice", "pw1")

	before := time.Now().Add(-time.Second)
	suite.createTestExpense(token, models.ExpenseCreate{Amount: decimal.NewFromInt(3)})

	history := suite.history(token)
	suite.Require().Len(history, 1)
	suite.Assert().True(history[0].Date.After(before), "Date %s is not after %s", history[0].Date, before)
}

func (suite *TestSuiteStandard) TestExpenseInvalidBody() {
	token := suite.registerAndLogin("alice", "pw1")

	tests := []struct {
		name string
		body string
	}{
		{"Empty", ""},
		{"Broken JSON", `{"amount": 5`},
		{"Amount not a number", `{"amount": "five"}`},
		{"Date not a date", `{"amount": 5, "date": "yesterday"}`},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/expenses", tt.body, test.Bearer(token))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	suite.Assert().Len(suite.history(token), 0)
}

func (suite *TestSuiteStandard) TestExpenseIsolation() {
	alice := suite.registerAndLogin("alice", "pw1")
	bob := suite.registerAndLogin("bob", "pw2")

	suite.createTestExpense(alice, models.ExpenseCreate{Amount: decimal.NewFromInt(10), Category: "Lunch"})
	id := suite.history(alice)[0].ID.String()

	// Bob can neither read nor see the expense
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/"+id, nil, test.Bearer(bob))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Len(suite.history(bob), 0)

	// Updates and deletes of foreign expenses succeed, but do not change anything
	r = test.Request(suite.T(), http.MethodPut, "http://example.com/api/expenses/"+id, models.ExpenseCreate{Amount: decimal.NewFromInt(99)}, test.Bearer(bob))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/expenses/"+id, nil, test.Bearer(bob))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	history := suite.history(alice)
	suite.Require().Len(history, 1)
	suite.Assert().True(decimal.NewFromInt(10).Equal(history[0].Amount))
	suite.Assert().Equal("Lunch", history[0].Category)
}

func (suite *TestSuiteStandard) TestExpenseUnknownAndInvalidID() {
	token := suite.registerAndLogin("alice", "pw1")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/"+uuid.New().String(), nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions} {
		r := test.Request(suite.T(), method, "http://example.com/api/expenses/not-a-uuid", `{"amount": 1}`, test.Bearer(token))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		suite.Assert().Contains(r.Body.String(), "not a valid UUID", method)
	}
}

func (suite *TestSuiteStandard) TestExpenseOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/api/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/api/expenses/"+uuid.New().String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))

	for _, path := range []string{"history", "meta", "export"} {
		r = test.Request(suite.T(), http.MethodOptions, "http://example.com/api/expenses/"+path, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"), path)
	}
}

func (suite *TestSuiteStandard) TestExpenseDBClosed() {
	token := suite.registerAndLogin("alice", "pw1")
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/expenses", `{"amount": 1}`, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/history", nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(r.Body.String(), models.ErrGeneral.Error())
}
