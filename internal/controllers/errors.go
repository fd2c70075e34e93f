package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, models.ErrAccountGone), errors.Is(err, models.ErrProtectedPerson):
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

// respondError writes the error response for err. Server errors are logged
// with the session's handle.
func respondError(c *gin.Context, err error) {
	code := status(err)
	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Str("handle", auth.Handle(c)).Str("path", c.FullPath()).Err(err).Msg("server error")
	}

	httputil.NewError(c, code, err)
}

var errMissingFields = errors.New("missing fields")

// Export errors
var (
	errExportBoundMissing = errors.New("startDate and endDate must both be set for a custom export")
	errExportFormat       = errors.New("the format must be one of: json, csv")
	errExportTimezone     = errors.New("the timezone is not a valid IANA time zone")
	errExportDate         = errors.New("dates must be in YYYY-MM-DD or RFC3339 format")
)
