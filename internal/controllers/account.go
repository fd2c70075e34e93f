package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// RegisterAccountRoutes registers the routes for registration and login.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsPost)
	r.POST("/register", co.Register)

	r.OPTIONS("/login", OptionsPost)
	r.POST("/login", co.Login)

	r.OPTIONS("/init", OptionsGet)
	r.GET("/init", auth.Required(co.Tokens), co.GetInit)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api/register [options]
// @Router			/api/login [options]
func OptionsPost(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api/init [options]
// @Router			/api/expenses/history [options]
// @Router			/api/expenses/meta [options]
// @Router			/api/expenses/export [options]
func OptionsGet(c *gin.Context) {
	httputil.OptionsGet(c)
}

func bindCredentials(c *gin.Context) (Credentials, error) {
	var credentials Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		return Credentials{}, err
	}

	if strings.TrimSpace(credentials.Handle) == "" || credentials.Secret == "" {
		return Credentials{}, errMissingFields
	}

	return credentials, nil
}

// @Summary		Register
// @Description	Creates an account with the default categories and people. Does not log in.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response
// @Failure		400			{object}	httputil.ErrorResponse
// @Failure		500			{object}	httputil.ErrorResponse
// @Param			credentials	body		Credentials	true	"Handle and secret"
// @Router			/api/register [post]
func (co Controller) Register(c *gin.Context) {
	credentials, err := bindCredentials(c)
	if err != nil {
		respondError(c, err)
		return
	}

	_, err = auth.Register(credentials.Handle, credentials.Secret)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Status:  httputil.StatusSuccess,
		Message: "User created",
	})
}

// @Summary		Login
// @Description	Returns a bearer token for the account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	httputil.ErrorResponse	"Unknown handle"
// @Failure		401			{object}	httputil.ErrorResponse	"Wrong secret"
// @Failure		500			{object}	httputil.ErrorResponse
// @Param			credentials	body		Credentials	true	"Handle and secret"
// @Router			/api/login [post]
func (co Controller) Login(c *gin.Context) {
	credentials, err := bindCredentials(c)
	if err != nil {
		respondError(c, err)
		return
	}

	account, err := auth.Authenticate(credentials.Handle, credentials.Secret)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := co.Tokens.Generate(account)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("login")
		respondError(c, models.ErrGeneral)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Status: httputil.StatusSuccess,
		Token:  token,
		Handle: account.Handle,
	})
}

// @Summary		Initial data
// @Description	Returns the people and categories of the account. Restores the default person if it is missing.
// @Tags			Accounts
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	InitResponse
// @Failure		401	{object}	httputil.ErrorResponse
// @Failure		403	{object}	httputil.ErrorResponse
// @Failure		500	{object}	httputil.ErrorResponse
// @Router			/api/init [get]
func (co Controller) GetInit(c *gin.Context) {
	accountID := auth.AccountID(c)

	err := models.AddPerson(accountID, models.DefaultPerson)
	if err != nil {
		respondError(c, err)
		return
	}

	people, err := models.ListPeople(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	categories, err := models.ListCategories(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, InitResponse{
		Status:     httputil.StatusSuccess,
		People:     people,
		Categories: categories,
	})
}
