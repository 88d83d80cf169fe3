package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrAlreadyExists    = errors.New("resource already exists")
	ErrInvalidInput     = errors.New("invalid input")
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrMerchantConflict = errors.New("cart holds items from another merchant")
	ErrQuotaExceeded    = errors.New("plan quota exceeded")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrAlreadyRedeemed  = errors.New("order already redeemed")
	ErrNothingToConfirm = errors.New("no unconfirmed lines for merchant")
)

// MerchantConflictError reports a merchant-lock violation, carrying the name
// of the merchant whose items currently hold the cart.
type MerchantConflictError struct {
	MerchantName string
}

func (e *MerchantConflictError) Error() string {
	return fmt.Sprintf("cart already holds items from merchant %q", e.MerchantName)
}

func (e *MerchantConflictError) Unwrap() error { return ErrMerchantConflict }

// QuotaExceededError reports a plan limit hit for a resource type.
type QuotaExceededError struct {
	Resource string
	Limit    int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("plan limit reached for %s (limit %d)", e.Resource, e.Limit)
}

func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }

// NothingToConfirmError reports a confirm call by a merchant that has no
// unconfirmed lines in the order.
type NothingToConfirmError struct {
	MerchantID uuid.UUID
}

func (e *NothingToConfirmError) Error() string {
	return fmt.Sprintf("merchant %s has no unconfirmed lines in this order", e.MerchantID)
}

func (e *NothingToConfirmError) Unwrap() error { return ErrNothingToConfirm }

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthenticated(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthenticated)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// StatusFor maps a domain error to the HTTP status the API contract assigns it.
func StatusFor(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMerchantConflict), errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrQuotaExceeded),
		errors.Is(err, ErrAlreadyRedeemed),
		errors.Is(err, ErrNothingToConfirm),
		errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrEmptyCart):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
