package services

import (
	"context"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionSvc moves money. Each call is one atomic unit: balances, the
// ledger entry and the audit record are committed together or not at all.
// The returned entry carries the resulting balances.
type TransactionSvc interface {
	Deposit(ctx context.Context, accountNo int64, amount decimal.Decimal) (*domain.LedgerEntry, error)
	Withdraw(ctx context.Context, accountNo int64, amount decimal.Decimal) (*domain.LedgerEntry, error)
	Transfer(ctx context.Context, fromAccount, toAccount int64, amount decimal.Decimal) (*domain.LedgerEntry, error)
}
