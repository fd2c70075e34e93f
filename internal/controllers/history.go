package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/exporter"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// @Summary		Expense history
// @Description	Returns one page of the expenses of the account, newest first.
// @Description	Pages have 10 expenses. A page with less expenses is the last one.
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	TransactionListResponse
// @Failure		401		{object}	httputil.ErrorResponse
// @Failure		403		{object}	httputil.ErrorResponse
// @Failure		500		{object}	httputil.ErrorResponse
// @Param			page	query		int	false	"Zero-based page index. Invalid values select the first page, pages beyond the last one are empty."
// @Router			/api/expenses/history [get]
func (co Controller) GetHistory(c *gin.Context) {
	// Unparseable pages select the first page. Out of range numbers are
	// clamped by Atoi and select an empty page.
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		page = 0
	}

	expenses, err := models.ExpensePage(auth.AccountID(c), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Status:       httputil.StatusSuccess,
		Transactions: newTransactions(expenses),
	})
}

// @Summary		Export metadata
// @Description	Returns the date of the oldest expense of the account
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	MetaResponse
// @Failure		401	{object}	httputil.ErrorResponse
// @Failure		403	{object}	httputil.ErrorResponse
// @Failure		500	{object}	httputil.ErrorResponse
// @Router			/api/expenses/meta [get]
func (co Controller) GetMeta(c *gin.Context) {
	first, err := models.EarliestExpenseDate(auth.AccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MetaResponse{
		Status:    httputil.StatusSuccess,
		FirstDate: first,
	})
}

// @Summary		Export expenses
// @Description	Without startDate and endDate, returns the expenses of the last 30 days, at most 100.
// @Description	With both, returns all expenses in the range. With format=csv, the export is returned as CSV file.
// @Tags			Expenses
// @Produce		json
// @Produce		text/csv
// @Security		BearerAuth
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httputil.ErrorResponse
// @Failure		401			{object}	httputil.ErrorResponse
// @Failure		403			{object}	httputil.ErrorResponse
// @Failure		500			{object}	httputil.ErrorResponse
// @Param			startDate	query		string	false	"Start of the range, YYYY-MM-DD or RFC3339"
// @Param			endDate		query		string	false	"End of the range, YYYY-MM-DD or RFC3339. Dates include the whole day."
// @Param			format		query		string	false	"json (default) or csv"
// @Param			locale		query		string	false	"Locale for CSV dates. Defaults to the Accept-Language header"
// @Param			timezone	query		string	false	"IANA time zone for CSV dates and date-only bounds"
// @Router			/api/expenses/export [get]
func (co Controller) GetExport(c *gin.Context) {
	var query ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, err)
		return
	}

	if query.Format != "" && query.Format != "json" && query.Format != "csv" {
		respondError(c, errExportFormat)
		return
	}

	loc := co.ExportLocation
	if loc == nil {
		loc = time.UTC
	}

	if query.Timezone != "" {
		l, err := time.LoadLocation(query.Timezone)
		if err != nil {
			respondError(c, errExportTimezone)
			return
		}
		loc = l
	}

	r, err := exportRange(query, loc)
	if err != nil {
		respondError(c, err)
		return
	}

	expenses, err := models.ExportExpenses(auth.AccountID(c), r, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	if query.Format != "csv" {
		c.JSON(http.StatusOK, TransactionListResponse{
			Status:       httputil.StatusSuccess,
			Transactions: newTransactions(expenses),
		})
		return
	}

	locale := query.Locale
	if locale == "" {
		locale = c.GetHeader("Accept-Language")
	}

	// Write to a buffer first so that errors can still be reported as JSON
	var b bytes.Buffer
	err = exporter.WriteCSV(&b, expenses, exporter.Options{
		Location: loc,
		Locale:   locale,
	})
	if err != nil {
		respondError(c, fmt.Errorf("%w: %v", models.ErrGeneral, err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.FileName(r != nil)))
	c.Data(http.StatusOK, exporter.ContentType+"; charset=utf-8", b.Bytes())
}

// exportRange returns the range requested by the query or nil for the default export.
func exportRange(query ExportQuery, loc *time.Location) (*models.ExportRange, error) {
	if query.StartDate == "" && query.EndDate == "" {
		return nil, nil
	}

	if query.StartDate == "" || query.EndDate == "" {
		return nil, errExportBoundMissing
	}

	start, err := parseBound(query.StartDate, loc, false)
	if err != nil {
		return nil, err
	}

	end, err := parseBound(query.EndDate, loc, true)
	if err != nil {
		return nil, err
	}

	r := &models.ExportRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// parseBound parses an RFC3339 timestamp or a date in loc. For the end of a range,
// dates cover the whole day.
func parseBound(s string, loc *time.Location, end bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(exporter.ISODate, s, loc)
	if err != nil {
		return time.Time{}, errExportDate
	}

	if end {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return t, nil
}
