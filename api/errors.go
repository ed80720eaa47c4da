package api

import (
	"errors"
	"net/http"

	"second-brain/api/db"
	"second-brain/api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func abortWith(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{
		"message":   message,
		"requestID": c.GetString("requestID"),
	})
}

// bindFailed answers a request whose body could not be bound or validated
func bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		abortWith(c, http.StatusRequestEntityTooLarge, "Request body size exceeds limit")
		return
	}

	invalidInputs(c, validators.Describe(err))
}

func invalidInputs(c *gin.Context, issues []validators.FieldError) {
	c.AbortWithStatusJSON(http.StatusLengthRequired, gin.H{
		"message":   "Error in inputs",
		"error":     issues,
		"requestID": c.GetString("requestID"),
	})
}

// serverError logs err and answers 500. Store connection failures get their
// own message.
func serverError(c *gin.Context, err error, msg string) {
	requestID := c.GetString("requestID")
	zap.L().Error(msg, zap.Error(err), zap.String("requestID", requestID))

	if errors.Is(err, db.ErrUnavailable) {
		abortWith(c, http.StatusInternalServerError, "Error connecting to database")
		return
	}

	abortWith(c, http.StatusInternalServerError, "Internal server error")
}
