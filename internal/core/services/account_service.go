package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trr_bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/trr_bank_ledger/internal/dto"
	"github.com/SscSPs/trr_bank_ledger/internal/utils/pagination"
)

// AccountService opens and reads accounts. Balance changes go through TransactionService.
type AccountService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	accountRepo  portsrepo.AccountRepositoryFacade
	customerRepo portsrepo.CustomerReader
	auditRepo    portsrepo.AuditWriter
	entryRepo    portsrepo.LedgerEntryReader
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

func NewAccountService(
	txManager portsrepo.TransactionManager,
	accountRepo portsrepo.AccountRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	auditRepo portsrepo.AuditWriter,
	entryRepo portsrepo.LedgerEntryReader,
) *AccountService {
	return &AccountService{
		txManager:    txManager,
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
		entryRepo:    entryRepo,
	}
}

// CreateAccount opens an account for an existing customer. The opening
// balance may be zero but not negative.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	opening, err := req.OpeningBalance.Decimal()
	if err != nil {
		return nil, err
	}
	if opening.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrInvalidAmount)
	}
	if !opening.IsZero() {
		if err := domain.ValidateAmount(opening); err != nil {
			return nil, err
		}
	}

	accountType := strings.TrimSpace(req.AccountType)
	if accountType == "" {
		accountType = domain.DefaultAccountType
	}

	account := domain.Account{
		CustomerID:  req.CustomerID,
		AccountType: accountType,
		Balance:     opening,
		Status:      domain.AccountActive,
	}

	var created *domain.Account
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		owner, err := s.customerRepo.FindCustomerByID(txCtx, req.CustomerID)
		if err != nil {
			return err
		}
		saved, err := s.accountRepo.SaveAccount(txCtx, account)
		if err != nil {
			return err
		}
		_, err = s.auditRepo.AppendAuditRecord(txCtx, domain.AuditRecord{
			Operation: domain.OpCreateAccount,
			Subject:   domain.SubjectAccount,
			Details:   fmt.Sprintf("%s account #%d created for %s (Bal: %s)", saved.AccountType, saved.AccountNo, owner.Name, saved.Balance.String()),
		})
		if err != nil {
			return err
		}
		created = saved
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create account", slog.Int64("customer_id", req.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.Int64("account_no", created.AccountNo), slog.Int64("customer_id", created.CustomerID))
	return created, nil
}

func (s *AccountService) GetAccountByNo(ctx context.Context, accountNo int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByNo(ctx, accountNo)
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.AccountWithOwner, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

// ListEntries pages through the account's ledger entries, newest first.
func (s *AccountService) ListEntries(ctx context.Context, accountNo int64, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	if _, err := s.accountRepo.FindAccountByNo(ctx, accountNo); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	var beforeID *int64
	if params.NextToken != "" {
		id, err := pagination.DecodeIDToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		beforeID = &id
	}

	// One extra row tells us whether another page exists.
	entries, err := s.entryRepo.ListEntriesByAccount(ctx, accountNo, limit+1, beforeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.Int64("account_no", accountNo))
		return nil, err
	}

	var nextToken *string
	if len(entries) > limit {
		entries = entries[:limit]
		token := pagination.EncodeIDToken(entries[len(entries)-1].EntryID)
		nextToken = &token
	}
	return dto.ToListEntriesResponse(entries, nextToken), nil
}
