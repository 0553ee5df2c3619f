package services

import (
	"context"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/SscSPs/trr_bank_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByNo retrieves a specific account by its number.
	GetAccountByNo(ctx context.Context, accountNo int64) (*domain.Account, error)

	// ListAccounts lists every account together with its owner's name.
	ListAccounts(ctx context.Context) ([]domain.AccountWithOwner, error)

	// ListEntries returns one page of the account's ledger entries, newest first.
	ListEntries(ctx context.Context, accountNo int64, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount opens an account and appends a CREATE ACCOUNT audit record in the same transaction.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
