package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trr_bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/trr_bank_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// TransactionService applies deposits, withdrawals and transfers. Each one
// runs as a single store transaction: lock accounts, check, adjust balances,
// record the ledger entry, append the audit record.
type TransactionService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	accountRepo portsrepo.AccountTransactionSupport
	entryRepo   portsrepo.LedgerEntryWriter
	auditRepo   portsrepo.AuditWriter
}

var _ portssvc.TransactionSvc = (*TransactionService)(nil)

func NewTransactionService(
	txManager portsrepo.TransactionManager,
	accountRepo portsrepo.AccountTransactionSupport,
	entryRepo portsrepo.LedgerEntryWriter,
	auditRepo portsrepo.AuditWriter,
) *TransactionService {
	return &TransactionService{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		auditRepo:   auditRepo,
	}
}

func (s *TransactionService) Deposit(ctx context.Context, accountNo int64, amount decimal.Decimal) (*domain.LedgerEntry, error) {
	return s.apply(ctx, domain.NewDeposit(accountNo, amount))
}

func (s *TransactionService) Withdraw(ctx context.Context, accountNo int64, amount decimal.Decimal) (*domain.LedgerEntry, error) {
	return s.apply(ctx, domain.NewWithdrawal(accountNo, amount))
}

func (s *TransactionService) Transfer(ctx context.Context, fromAccount, toAccount int64, amount decimal.Decimal) (*domain.LedgerEntry, error) {
	return s.apply(ctx, domain.NewTransfer(fromAccount, toAccount, amount))
}

func (s *TransactionService) apply(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	attrs := []any{
		slog.String("kind", string(entry.Kind)),
		slog.String("amount", entry.Amount.String()),
		slog.Any("accounts", entry.AccountNos()),
	}

	if err := entry.Validate(); err != nil {
		s.LogFailure(ctx, err, "Ledger operation rejected", append(attrs, slog.String("state", string(domain.StateRejected)))...)
		return nil, err
	}
	s.LogDebug(ctx, "Ledger operation validated", append(attrs, slog.String("state", string(domain.StateValidated)))...)

	applied := false
	var committed *domain.LedgerEntry
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		accounts, err := s.accountRepo.LockAccounts(txCtx, entry.AccountNos())
		if err != nil {
			return err
		}
		if err := checkAccounts(entry, accounts); err != nil {
			return err
		}

		changes := accounting.BalanceChanges(entry)
		if err := accounting.ValidateConservation(entry, changes); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "inconsistent balance changes", err)
		}
		if entry.FromAccount != nil {
			source := accounts[*entry.FromAccount]
			if !accounting.SufficientFunds(source.Balance, changes[source.AccountNo]) {
				return fmt.Errorf("%w: account %d balance %s is less than %s",
					apperrors.ErrInsufficientFunds, source.AccountNo, source.Balance.String(), entry.Amount.String())
			}
		}

		// Adjust in the same ascending order the rows were locked in.
		for _, accountNo := range entry.AccountNos() {
			newBalance, err := s.accountRepo.AdjustBalance(txCtx, accountNo, changes[accountNo])
			if err != nil {
				return err
			}
			applied = true
			if entry.FromAccount != nil && *entry.FromAccount == accountNo {
				entry.FromBalance = &newBalance
			}
			if entry.ToAccount != nil && *entry.ToAccount == accountNo {
				entry.ToBalance = &newBalance
			}
		}
		s.LogDebug(txCtx, "Ledger operation applied", append(attrs, slog.String("state", string(domain.StateApplied)))...)

		saved, err := s.entryRepo.SaveEntry(txCtx, entry)
		if err != nil {
			return err
		}
		_, err = s.auditRepo.AppendAuditRecord(txCtx, domain.AuditRecord{
			Operation: entry.AuditOperation(),
			Subject:   domain.SubjectAccount,
			Details:   entry.Details(),
		})
		if err != nil {
			return err
		}
		s.LogDebug(txCtx, "Ledger operation audited", append(attrs, slog.String("state", string(domain.StateAudited)))...)

		committed = saved
		return nil
	})
	if err != nil {
		state := domain.StateRejected
		if applied {
			state = domain.StateRolledBack
		}
		s.LogFailure(ctx, err, "Ledger operation failed", append(attrs, slog.String("state", string(state)))...)
		return nil, err
	}

	s.LogInfo(ctx, "Ledger operation committed", append(attrs,
		slog.String("state", string(domain.StateCommitted)),
		slog.Int64("entry_id", committed.EntryID))...)
	return committed, nil
}

// checkAccounts verifies that every account the entry touches exists and is active.
// For transfers the error names the side that is missing.
func checkAccounts(entry domain.LedgerEntry, accounts map[int64]domain.Account) error {
	check := func(accountNo *int64, side string) error {
		if accountNo == nil {
			return nil
		}
		label := "account"
		if entry.Kind == domain.EntryTransfer {
			label = side + " account"
		}
		acc, ok := accounts[*accountNo]
		if !ok {
			return apperrors.NewNotFoundError(apperrors.ErrAccountNotFound, fmt.Sprintf("%s %d", label, *accountNo))
		}
		if !acc.IsActive() {
			return fmt.Errorf("%w: %s %d is %s", apperrors.ErrAccountInactive, label, *accountNo, acc.Status)
		}
		return nil
	}

	if err := check(entry.FromAccount, "source"); err != nil {
		return err
	}
	return check(entry.ToAccount, "destination")
}
