package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidAmount indicates a non-positive or malformed monetary amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrAccountNotFound indicates that a referenced account does not exist.
var ErrAccountNotFound = errors.New("account not found")

// ErrCustomerNotFound indicates that a referenced customer does not exist.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrInsufficientFunds indicates that a debit would drive a balance below zero.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrSameAccount indicates a transfer whose source and destination are the same account.
var ErrSameAccount = errors.New("source and destination accounts must differ")

// ErrDuplicateIdentity indicates that a customer with the same national ID already exists.
var ErrDuplicateIdentity = errors.New("customer with this national ID already exists")

// ErrAccountInactive indicates a mutation attempted against an inactive account.
var ErrAccountInactive = errors.New("account is not active")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrStorageFailure indicates that the underlying store could not complete an operation.
var ErrStorageFailure = errors.New("storage failure")

// AppError carries an HTTP-ish status code and a message alongside the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewStorageError wraps a driver error so that it matches ErrStorageFailure
// while keeping the original cause reachable through errors.Is/As.
func NewStorageError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, fmt.Errorf("%w: %w", ErrStorageFailure, err))
}

// NewNotFoundError wraps one of the not-found sentinels with a descriptive message.
func NewNotFoundError(kind error, message string) *AppError {
	return NewAppError(http.StatusNotFound, message, kind)
}
