package dto

import (
	"time"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open an account.
type CreateAccountRequest struct {
	CustomerID     int64  `json:"customerId" binding:"required,gt=0"`
	AccountType    string `json:"type" binding:"max=32"` // Defaults to Savings
	OpeningBalance Amount `json:"openingBalance" binding:"amount" swaggertype:"string"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountNo   int64                `json:"accountNo"`
	CustomerID  int64                `json:"customerId"`
	OwnerName   string               `json:"ownerName,omitempty"`
	AccountType string               `json:"type"`
	Balance     decimal.Decimal      `json:"balance"`
	Status      domain.AccountStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNo:   acc.AccountNo,
		CustomerID:  acc.CustomerID,
		AccountType: acc.AccountType,
		Balance:     acc.Balance,
		Status:      acc.Status,
		CreatedAt:   acc.CreatedAt,
	}
}

// ToListAccountResponse converts owner-annotated accounts to AccountResponse DTOs
func ToListAccountResponse(accounts []domain.AccountWithOwner) []AccountResponse {
	return lo.Map(accounts, func(a domain.AccountWithOwner, _ int) AccountResponse {
		res := ToAccountResponse(&a.Account)
		res.OwnerName = a.OwnerName
		return res
	})
}
