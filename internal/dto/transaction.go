package dto

import (
	"time"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DepositRequest credits an account.
type DepositRequest struct {
	AccountNo int64  `json:"accountNo" binding:"required,gt=0"`
	Amount    Amount `json:"amount" binding:"amount" swaggertype:"string"`
}

// WithdrawRequest debits an account.
type WithdrawRequest struct {
	AccountNo int64  `json:"accountNo" binding:"required,gt=0"`
	Amount    Amount `json:"amount" binding:"amount" swaggertype:"string"`
}

// TransferRequest moves money between two accounts.
type TransferRequest struct {
	FromAccount int64  `json:"fromAccount" binding:"required,gt=0"`
	ToAccount   int64  `json:"toAccount" binding:"required,gt=0"`
	Amount      Amount `json:"amount" binding:"amount" swaggertype:"string"`
}

// LedgerEntryResponse is returned for a committed deposit, withdrawal or transfer.
type LedgerEntryResponse struct {
	EntryID     int64            `json:"entryId"`
	Kind        domain.EntryKind `json:"kind"`
	FromAccount *int64           `json:"fromAccount,omitempty"`
	ToAccount   *int64           `json:"toAccount,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	FromBalance *decimal.Decimal `json:"fromBalance,omitempty"`
	ToBalance   *decimal.Decimal `json:"toBalance,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:     e.EntryID,
		Kind:        e.Kind,
		FromAccount: e.FromAccount,
		ToAccount:   e.ToAccount,
		Amount:      e.Amount,
		FromBalance: e.FromBalance,
		ToBalance:   e.ToBalance,
		CreatedAt:   e.CreatedAt,
	}
}

// ListEntriesParams defines query parameters for listing an account's ledger entries.
type ListEntriesParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListEntriesResponse is one page of ledger entries.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToListEntriesResponse builds a page response.
func ToListEntriesResponse(entries []domain.LedgerEntry, nextToken *string) *ListEntriesResponse {
	return &ListEntriesResponse{
		Entries: lo.Map(entries, func(e domain.LedgerEntry, _ int) LedgerEntryResponse {
			return ToLedgerEntryResponse(&e)
		}),
		NextToken: nextToken,
	}
}
