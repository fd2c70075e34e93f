package httputil

import (
	"github.com/gin-gonic/gin"
)

// Status values of all response bodies.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is the body of all error responses.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Invalid credentials"`
}

// NewError writes an ErrorResponse for err with the HTTP status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Message: err.Error(),
	})
}

// AbortWithError writes an ErrorResponse and stops the handler chain.
func AbortWithError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Status:  StatusError,
		Message: err.Error(),
	})
}
