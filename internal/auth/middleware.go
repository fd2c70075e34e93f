package auth

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/rs/zerolog/log"
)

// Keys of the session values in the gin context.
const (
	contextAccountID = "pocketledger.accountID"
	contextHandle    = "pocketledger.handle"
)

// Required returns a middleware that only passes requests with a valid bearer token.
//
// Requests without a token are rejected with 401, requests with a token
// that does not validate with 403.
func Required(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			httputil.AbortWithError(c, http.StatusUnauthorized, ErrMissingToken)
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("token rejected")
			httputil.AbortWithError(c, http.StatusForbidden, ErrInvalidToken)
			return
		}

		// Validate already checked that the ID parses
		c.Set(contextAccountID, uuid.MustParse(claims.AccountID))
		c.Set(contextHandle, claims.Handle)
		c.Next()
	}
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
// The scheme itself is not checked.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}

	return parts[1]
}

// AccountID returns the ID of the account of the session.
func AccountID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(contextAccountID)
	accountID, _ := id.(uuid.UUID)
	return accountID
}

// Handle returns the handle of the account of the session.
func Handle(c *gin.Context) string {
	return c.GetString(contextHandle)
}
