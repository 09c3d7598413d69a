// Package errors defines application-level errors carrying both an HTTP
// status and a stable business error code.
package errors

import (
	"net/http"

	"comanda/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is lets errors.Is match a detailed copy against its predefined original.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Validation errors: a required customer field is missing for the chosen
	// order type. Surfaced to the user; blocks the FORM -> SUMMARY transition.
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"order data validation failed",
		"",
	)

	// Constraint violations on the side-dish count for franguinho lines.
	ErrSidesIncomplete = NewBaseError(
		http.StatusUnprocessableEntity,
		"SIDES_INCOMPLETE",
		"not enough side dishes selected",
		"",
	)

	ErrSidesOverLimit = NewBaseError(
		http.StatusUnprocessableEntity,
		"SIDES_OVER_LIMIT",
		"too many side dishes selected",
		"",
	)

	// Draft lifecycle errors.
	ErrDraftNotFound = NewBaseError(
		http.StatusNotFound,
		"DRAFT_NOT_FOUND",
		"draft not found",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusUnprocessableEntity,
		"EMPTY_CART",
		"the cart is empty",
		"",
	)

	ErrInvalidStep = NewBaseError(
		http.StatusConflict,
		"INVALID_STEP",
		"operation not allowed at the current step",
		"",
	)

	ErrNotAtSummary = NewBaseError(
		http.StatusConflict,
		"NOT_AT_SUMMARY",
		"finalization is only allowed from the summary step",
		"",
	)

	// Catalog and history errors.
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	// Printing errors. Never fatal: the order is committed before printing is
	// attempted, and the spool fallback catches bridge failures.
	ErrPrintFailed = NewBaseError(
		http.StatusBadGateway,
		"PRINT_FAILED",
		"could not print the receipt",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)
