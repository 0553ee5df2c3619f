package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError(ErrAccountNotFound, "source account 98")

	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.NotErrorIs(t, err, ErrCustomerNotFound)
	assert.Equal(t, http.StatusNotFound, err.Code)
	assert.Equal(t, "source account 98: account not found", err.Error())
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStorageError("failed to lock accounts", cause)

	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.Code)

	var appErr *AppError
	assert.True(t, errors.As(error(err), &appErr))
	assert.Equal(t, "failed to lock accounts", appErr.Message)
}
