// Package httpapi normalizes error responses across both servers into a
// single JSON envelope.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the envelope every failed request is reported with.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// Error is a failure with an HTTP status decided by the service layer.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds a status-carrying error.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Abort writes the error envelope and stops handler processing.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}

// Fail maps a service error onto the envelope. Errors without an explicit
// status become 500 with a generic message; the cause is logged, not leaked.
func Fail(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		Abort(c, apiErr.Status, apiErr.Message)
		return
	}

	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("unhandled error")
	Abort(c, http.StatusInternalServerError, "an unexpected error occurred")
}
