package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/monolito/ecommerce-go/internal/apperr"
)

type ErrorResponse struct {
	Code      int       `json:"code"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// writeError maps the error taxonomy to HTTP status codes. OrderCreationError
// is matched before InsufficientStockError: it wraps one, and the two must
// map differently so callers can tell a rolled-back attempt from a rejection
// that touched nothing.
func writeError(c *gin.Context, err error) {
	var (
		notFound     *apperr.NotFoundError
		orderFailed  *apperr.OrderCreationError
		noStock      *apperr.InsufficientStockError
		invalidInput *apperr.ValidationError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &orderFailed):
		status = http.StatusConflict
	case errors.As(err, &noStock):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrEmptyCart):
		status = http.StatusBadRequest
	case errors.As(err, &invalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	c.JSON(status, ErrorResponse{
		Code:      status,
		Error:     err.Error(),
		Timestamp: time.Now().UTC(),
	})
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:      http.StatusBadRequest,
		Error:     err.Error(),
		Timestamp: time.Now().UTC(),
	})
}
