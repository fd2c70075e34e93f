package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	authenticated := r.Group("", auth.Required(co.Tokens))

	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		authenticated.POST("", co.CreateExpense)
	}

	// History and export
	{
		r.OPTIONS("/history", OptionsGet)
		authenticated.GET("/history", co.GetHistory)
		r.OPTIONS("/meta", OptionsGet)
		authenticated.GET("/meta", co.GetMeta)
		r.OPTIONS("/export", OptionsGet)
		authenticated.GET("/export", co.GetExport)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		authenticated.GET("/:id", co.GetExpense)
		authenticated.PUT("/:id", co.UpdateExpense)
		authenticated.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/api/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httputil.ErrorResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create expense
// @Description	Logs a new expense. If no date is set, the current time is used.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	Response
// @Failure		400		{object}	httputil.ErrorResponse
// @Failure		401		{object}	httputil.ErrorResponse
// @Failure		403		{object}	httputil.ErrorResponse
// @Failure		500		{object}	httputil.ErrorResponse
// @Param			expense	body		models.ExpenseCreate	true	"Expense"
// @Router			/api/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable models.ExpenseCreate
	if err := httputil.BindData(c, &editable); err != nil {
		respondError(c, err)
		return
	}

	_, err := models.CreateExpense(auth.AccountID(c), editable)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Status:  httputil.StatusSuccess,
		Message: "Saved successfully",
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense of the account
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httputil.ErrorResponse
// @Failure		404	{object}	httputil.ErrorResponse
// @Failure		500	{object}	httputil.ErrorResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/api/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	expense, err := models.GetExpense(auth.AccountID(c), uri.ID.UUID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{
		Status:      httputil.StatusSuccess,
		Transaction: newTransaction(expense),
	})
}

// @Summary		Update expense
// @Description	Replaces amount, person, category, description and date of an expense.
// @Description	Expenses of other accounts are never modified, the request still succeeds.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	Response
// @Failure		400		{object}	httputil.ErrorResponse
// @Failure		500		{object}	httputil.ErrorResponse
// @Param			id		path		URIID					true	"ID formatted as string"
// @Param			expense	body		models.ExpenseCreate	true	"Expense"
// @Router			/api/expenses/{id} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	var editable models.ExpenseCreate
	if err := httputil.BindData(c, &editable); err != nil {
		respondError(c, err)
		return
	}

	_, err := models.UpdateExpense(auth.AccountID(c), uri.ID.UUID, editable)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Status:  httputil.StatusSuccess,
		Message: "Updated successfully",
	})
}

// @Summary		Delete expense
// @Description	Deletes an expense. Expenses of other accounts are never deleted, the request still succeeds.
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	Response
// @Failure		400	{object}	httputil.ErrorResponse
// @Failure		500	{object}	httputil.ErrorResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/api/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, err)
		return
	}

	_, err := models.DeleteExpense(auth.AccountID(c), uri.ID.UUID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Status:  httputil.StatusSuccess,
		Message: "Deleted successfully",
	})
}
