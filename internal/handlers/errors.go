package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type errorMapping struct {
	kind   error
	status int
	code   string
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{apperrors.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
	{apperrors.ErrSameAccount, http.StatusBadRequest, "SAME_ACCOUNT"},
	{apperrors.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{apperrors.ErrAccountNotFound, http.StatusNotFound, "ACCOUNT_NOT_FOUND"},
	{apperrors.ErrCustomerNotFound, http.StatusNotFound, "CUSTOMER_NOT_FOUND"},
	{apperrors.ErrDuplicateIdentity, http.StatusConflict, "DUPLICATE_IDENTITY"},
	{apperrors.ErrAccountInactive, http.StatusConflict, "ACCOUNT_INACTIVE"},
	{apperrors.ErrInsufficientFunds, http.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS"},
}

// errorStatus maps a service error to its HTTP status and error code.
// Anything unrecognised is reported as a storage failure.
func errorStatus(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.kind) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "STORAGE_FAILURE"
}

// respondError writes the error response for err. Internal failures are
// logged with their cause and reported with a generic message.
func respondError(c *gin.Context, err error, failureMsg string) {
	logger := loggerFrom(c)
	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: failureMsg, Code: code})
		return
	}
	logger.Warn(failureMsg, slog.String("error", err.Error()), slog.String("code", code))
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

// respondBindError reports a request body or query that could not be bound.
// A malformed amount field is an amount error, not a format error.
func respondBindError(c *gin.Context, err error, what string) {
	loggerFrom(c).Warn("Failed to bind "+what, slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == amountTag {
				c.JSON(http.StatusBadRequest, ErrorResponse{
					Error: fmt.Sprintf("%s: %s %q is not a decimal number", apperrors.ErrInvalidAmount, fe.Field(), fe.Value()),
					Code:  "INVALID_AMOUNT",
				})
				return
			}
		}
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: "VALIDATION_ERROR"})
}

func loggerFrom(c *gin.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(c.Request.Context())
}
