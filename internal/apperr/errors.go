// Package apperr defines the error taxonomy shared by the stores, the
// services, and the HTTP layer. Handlers match on these types to pick
// response status codes.
package apperr

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when checkout is attempted on a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// ErrInvalidCredentials is returned on a failed login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// NotFoundError reports an absent user, product, or order.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// InsufficientStockError reports a requested quantity exceeding available
// stock. Available below zero means the count was not observed at the point
// the error was raised (advisory pre-checks only see a boolean).
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	if e.Available < 0 {
		return fmt.Sprintf("insufficient stock for %s: requested %d", e.ProductName, e.Requested)
	}
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.ProductName, e.Requested, e.Available)
}

// OrderCreationError wraps a stock failure discovered mid-commit, after the
// already-applied decrements have been compensated. The root cause stays
// reachable through Unwrap so callers can tell "attempted and rolled back"
// apart from "nothing happened".
type OrderCreationError struct {
	Cause error
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("order creation failed: %v", e.Cause)
}

func (e *OrderCreationError) Unwrap() error {
	return e.Cause
}

// ValidationError reports a business-rule violation on input values, such as
// a non-positive price or an already-taken username.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsInsufficientStock(err error) bool {
	var is *InsufficientStockError
	return errors.As(err, &is)
}
