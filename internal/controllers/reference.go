package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	authenticated := r.Group("", auth.Required(co.Tokens))

	r.OPTIONS("", OptionsReferenceList)
	authenticated.POST("", co.CreateCategory)

	r.OPTIONS("/:name", OptionsReferenceDetail)
	authenticated.DELETE("/:name", co.DeleteCategory)
}

// RegisterPersonRoutes registers the routes for people with
// the RouterGroup that is passed.
func (co Controller) RegisterPersonRoutes(r *gin.RouterGroup) {
	authenticated := r.Group("", auth.Required(co.Tokens))

	r.OPTIONS("", OptionsReferenceList)
	authenticated.POST("", co.CreatePerson)

	r.OPTIONS("/:name", OptionsReferenceDetail)
	authenticated.DELETE("/:name", co.DeletePerson)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reference data
// @Success		204
// @Router			/api/categories [options]
// @Router			/api/people [options]
func OptionsReferenceList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reference data
// @Success		204
// @Param			name	path	URIName	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/categories/{name} [options]
// @Router			/api/people/{name} [options]
func OptionsReferenceDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// createReference binds the name from the request and adds it with add.
func createReference(c *gin.Context, add func(uuid.UUID, string) error) {
	var editable ReferenceEditable
	if err := httputil.BindData(c, &editable); err != nil {
		respondError(c, err)
		return
	}

	if err := add(auth.AccountID(c), editable.Name); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Status: httputil.StatusSuccess})
}

// deleteReference deletes the name from the URI with remove.
func deleteReference(c *gin.Context, remove func(uuid.UUID, string) error) {
	var uri URIName
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	if err := remove(auth.AccountID(c), uri.Name); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Status: httputil.StatusSuccess})
}

// @Summary		Create category
// @Description	Adds a category to the account. Adding an existing category succeeds without changes.
// @Tags			Reference data
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	Response
// @Failure		400			{object}	httputil.ErrorResponse
// @Failure		500			{object}	httputil.ErrorResponse
// @Param			category	body		ReferenceEditable	true	"Category"
// @Router			/api/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	createReference(c, models.AddCategory)
}

// @Summary		Delete category
// @Description	Deletes a category. Expenses keep their category name.
// @Tags			Reference data
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	Response
// @Failure		500		{object}	httputil.ErrorResponse
// @Param			name	path		URIName	true	"Name of the category"
// @Router			/api/categories/{name} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	deleteReference(c, models.DeleteCategory)
}

// @Summary		Create person
// @Description	Adds a person to the account. Adding an existing person succeeds without changes.
// @Tags			Reference data
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	Response
// @Failure		400		{object}	httputil.ErrorResponse
// @Failure		500		{object}	httputil.ErrorResponse
// @Param			person	body		ReferenceEditable	true	"Person"
// @Router			/api/people [post]
func (co Controller) CreatePerson(c *gin.Context) {
	createReference(c, models.AddPerson)
}

// @Summary		Delete person
// @Description	Deletes a person. The default person "Me" can not be deleted.
// @Tags			Reference data
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	Response
// @Failure		403		{object}	httputil.ErrorResponse
// @Failure		500		{object}	httputil.ErrorResponse
// @Param			name	path		URIName	true	"Name of the person"
// @Router			/api/people/{name} [delete]
func (co Controller) DeletePerson(c *gin.Context) {
	deleteReference(c, models.DeletePerson)
}
