package repositories

import (
	"context"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByNo retrieves a specific account by its number.
	FindAccountByNo(ctx context.Context, accountNo int64) (*domain.Account, error)

	// ListAccounts returns every account joined to its owner's name, ordered by account number.
	ListAccounts(ctx context.Context) ([]domain.AccountWithOwner, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns it with its assigned number.
	// A missing owner yields apperrors.ErrCustomerNotFound.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
}

// AccountTransactionSupport defines operations that must run inside TransactionManager.RunInTx.
type AccountTransactionSupport interface {
	// LockAccounts reads and locks the given accounts in ascending account number order.
	// Accounts that do not exist are simply absent from the result.
	LockAccounts(ctx context.Context, accountNos []int64) (map[int64]domain.Account, error)

	// AdjustBalance adds delta to the account balance and returns the new balance.
	// A delta that would drive the balance below zero yields apperrors.ErrInsufficientFunds
	// and leaves the balance untouched.
	AdjustBalance(ctx context.Context, accountNo int64, delta decimal.Decimal) (decimal.Decimal, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
