package controllers_test

import (
	"net/http"
	"testing"

	"github.com/pocketledger/backend/internal/controllers"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegisterAndInit() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/register", controllers.Credentials{Handle: "alice", Secret: "pw1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"status": "success", "message": "User created"}`, r.Body.String())

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/api/login", controllers.Credentials{Handle: "alice", Secret: "pw1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var login controllers.LoginResponse
	test.DecodeResponse(suite.T(), &r, &login)
	suite.Assert().Equal("success", login.Status)
	suite.Assert().Equal("alice", login.Handle)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/init", nil, test.Bearer(login.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var init controllers.InitResponse
	test.DecodeResponse(suite.T(), &r, &init)
	suite.Assert().Equal([]string{models.DefaultPerson}, init.People)
	suite.Assert().Equal(models.DefaultCategories, init.Categories)
}

func (suite *TestSuiteStandard) TestRegisterDuplicate() {
	suite.registerAndLogin("alice", "pw1")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/register", controllers.Credentials{Handle: "alice", Secret: "other"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), `"status":"error"`)
}

func (suite *TestSuiteStandard) TestCredentialsInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{"handle": "alice"`},
		{"Handle missing", `{"secret": "pw1"}`},
		{"Handle blank", `{"handle": "  ", "secret": "pw1"}`},
		{"Secret missing", `{"handle": "alice"}`},
		{"Wrong type", `{"handle": 17, "secret": "pw1"}`},
	}

	for _, tt := range tests {
		for _, path := range []string{"register", "login"} {
			suite.T().Run(tt.name+" "+path, func(t *testing.T) {
				r := test.Request(t, http.MethodPost, "http://example.com/api/"+path, tt.body)
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			})
		}
	}
}

func (suite *TestSuiteStandard) TestLoginFailures() {
	suite.registerAndLogin("alice", "pw1")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/login", controllers.Credentials{Handle: "bob", Secret: "pw1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), "user not found")

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/api/login", controllers.Credentials{Handle: "alice", Secret: "wrong"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	suite.Assert().Contains(r.Body.String(), "invalid credentials")
}

func (suite *TestSuiteStandard) TestInitRestoresDefaultPerson() {
	token := suite.registerAndLogin("alice", "pw1")

	account, err := models.AccountByHandle("alice")
	suite.Require().Nil(err)

	// Simulate an account where seeding did not complete
	suite.Require().Nil(models.DB.Where("account_id = ?", account.ID).Delete(&models.Person{}).Error)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/init", nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var init controllers.InitResponse
	test.DecodeResponse(suite.T(), &r, &init)
	suite.Assert().Equal([]string{models.DefaultPerson}, init.People)
}

func (suite *TestSuiteStandard) TestAuthentication() {
	token := suite.registerAndLogin("alice", "pw1")

	tests := []struct {
		name    string
		headers map[string]string
		status  int
		message string
	}{
		{"No header", map[string]string{}, http.StatusUnauthorized, "access denied"},
		{"Scheme only", map[string]string{"Authorization": "Bearer"}, http.StatusUnauthorized, "access denied"},
		{"Garbage", map[string]string{"Authorization": "Bearer garbage"}, http.StatusForbidden, "invalid token"},
		{"Tampered", map[string]string{"Authorization": "Bearer " + token + "x"}, http.StatusForbidden, "invalid token"},
		{"Valid", test.Bearer(token), http.StatusOK, ""},
	}

	for _, tt := range tests {
		for _, path := range []string{"/api/init", "/api/expenses/history", "/api/expenses/meta", "/api/expenses/export"} {
			suite.T().Run(tt.name+" "+path, func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "http://example.com"+path, nil, tt.headers)
				test.AssertHTTPStatus(t, &r, tt.status)

				if tt.message != "" {
					assert.Contains(t, r.Body.String(), tt.message)
				}
			})
		}
	}
}

func (suite *TestSuiteStandard) TestAccountDeleted() {
	token := suite.registerAndLogin("alice", "pw1")

	account, err := models.AccountByHandle("alice")
	suite.Require().Nil(err)

	// References must be gone before the account can be deleted
	suite.Require().Nil(models.DB.Where("account_id = ?", account.ID).Delete(&models.Category{}).Error)
	suite.Require().Nil(models.DB.Where("account_id = ?", account.ID).Delete(&models.Person{}).Error)
	suite.Require().Nil(models.DB.Delete(&account).Error)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/expenses", `{"amount": 5}`, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestAccountOptions() {
	for path, allow := range map[string]string{
		"/api/register": "OPTIONS, POST",
		"/api/login":    "OPTIONS, POST",
		"/api/init":     "OPTIONS, GET",
	} {
		r := test.Request(suite.T(), http.MethodOptions, "http://example.com"+path, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal(allow, r.Header().Get("allow"), path)
	}
}

func (suite *TestSuiteStandard) TestRegisterDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/register", controllers.Credentials{Handle: "alice", Secret: "pw1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(r.Body.String(), models.ErrGeneral.Error())
}
