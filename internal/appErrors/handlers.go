package appErrors

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err to the gin response, collapsing unknown errors into
// a 500 without leaking internals.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		log.Printf("unhandled error: %v", err)
		appErr = New(CodeInternalError, "Internal server error", http.StatusInternalServerError)
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("server error: %v", err)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleValidationError converts gin binding errors into the standard envelope.
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ErrValidationFailed.WithDetails(gin.H{"details": err.Error()}))
}
