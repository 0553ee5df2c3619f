package handlers

import (
	"sync"

	"github.com/SscSPs/trr_bank_ledger/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const amountTag = "amount"

var registerValidatorsOnce sync.Once

// registerValidators adds the amount tag to gin's validator.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation(amountTag, validAmount)
		}
	})
}

// validAmount accepts an absent amount or any decimal number. Sign and
// precision are checked by the services.
func validAmount(fl validator.FieldLevel) bool {
	return dto.Amount(fl.Field().String()).Valid()
}
