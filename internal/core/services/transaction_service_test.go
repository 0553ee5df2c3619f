package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/SscSPs/trr_bank_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	txManager   *passthroughTxManager
	accountRepo *MockAccountRepository
	entryRepo   *MockLedgerEntryRepository
	auditRepo   *MockAuditRepository
	service     *services.TransactionService
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.txManager = &passthroughTxManager{}
	suite.accountRepo = new(MockAccountRepository)
	suite.entryRepo = new(MockLedgerEntryRepository)
	suite.auditRepo = new(MockAuditRepository)
	suite.service = services.NewTransactionService(suite.txManager, suite.accountRepo, suite.entryRepo, suite.auditRepo)
}

func activeAccount(no int64, balance string) domain.Account {
	return domain.Account{
		AccountNo:   no,
		CustomerID:  1,
		AccountType: domain.DefaultAccountType,
		Balance:     decimal.RequireFromString(balance),
		Status:      domain.AccountActive,
	}
}

// echoSavedEntry makes SaveEntry return its argument with an assigned ID.
func (suite *TransactionServiceTestSuite) echoSavedEntry(id int64) {
	suite.entryRepo.On("SaveEntry", mock.Anything, mock.AnythingOfType("domain.LedgerEntry")).
		Return(func(_ context.Context, e domain.LedgerEntry) *domain.LedgerEntry {
			e.EntryID = id
			return &e
		}, nil).Once()
}

func (suite *TransactionServiceTestSuite) assertNothingWritten() {
	suite.accountRepo.AssertNotCalled(suite.T(), "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
	suite.auditRepo.AssertNotCalled(suite.T(), "AppendAuditRecord", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeposit_Success() {
	ctx := context.Background()
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{1}).
		Return(map[int64]domain.Account{1: activeAccount(1, "50000")}, nil).Once()
	suite.accountRepo.On("AdjustBalance", mock.Anything, int64(1), decEq("1000")).
		Return(decimal.RequireFromString("51000"), nil).Once()
	suite.echoSavedEntry(1)
	suite.auditRepo.On("AppendAuditRecord", mock.Anything, mock.MatchedBy(func(r domain.AuditRecord) bool {
		return r.String() == "DEPOSIT +1000 → Account 1" && r.Subject == domain.SubjectAccount
	})).Return(&domain.AuditRecord{AuditID: 1}, nil).Once()

	entry, err := suite.service.Deposit(ctx, 1, decimal.NewFromInt(1000))

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(int64(1), entry.EntryID)
	suite.Equal(domain.EntryDeposit, entry.Kind)
	suite.Require().NotNil(entry.ToBalance)
	suite.True(entry.ToBalance.Equal(decimal.NewFromInt(51000)))
	suite.Nil(entry.FromBalance)
	suite.Equal(1, suite.txManager.calls)
	suite.accountRepo.AssertExpectations(suite.T())
	suite.entryRepo.AssertExpectations(suite.T())
	suite.auditRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestWithdraw_Success() {
	ctx := context.Background()
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{2}).
		Return(map[int64]domain.Account{2: activeAccount(2, "75000")}, nil).Once()
	suite.accountRepo.On("AdjustBalance", mock.Anything, int64(2), decEq("-5000.50")).
		Return(decimal.RequireFromString("69999.50"), nil).Once()
	suite.echoSavedEntry(2)
	suite.auditRepo.On("AppendAuditRecord", mock.Anything, mock.MatchedBy(func(r domain.AuditRecord) bool {
		return r.Operation == domain.OpWithdraw && r.Details == "-5000.5 ← Account 2 (New Bal: 69999.5)"
	})).Return(&domain.AuditRecord{AuditID: 2}, nil).Once()

	entry, err := suite.service.Withdraw(ctx, 2, decimal.RequireFromString("5000.50"))

	suite.Require().NoError(err)
	suite.Require().NotNil(entry.FromBalance)
	suite.True(entry.FromBalance.Equal(decimal.RequireFromString("69999.50")))
	suite.auditRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestWithdraw_InsufficientFunds() {
	ctx := context.Background()
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{1}).
		Return(map[int64]domain.Account{1: activeAccount(1, "50000")}, nil).Once()

	entry, err := suite.service.Withdraw(ctx, 1, decimal.NewFromInt(60000))

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.assertNothingWritten()
}

func (suite *TransactionServiceTestSuite) TestWithdraw_ExactBalanceAllowed() {
	ctx := context.Background()
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{1}).
		Return(map[int64]domain.Account{1: activeAccount(1, "50000")}, nil).Once()
	suite.accountRepo.On("AdjustBalance", mock.Anything, int64(1), decEq("-50000")).
		Return(decimal.Zero, nil).Once()
	suite.echoSavedEntry(3)
	suite.auditRepo.On("AppendAuditRecord", mock.Anything, mock.AnythingOfType("domain.AuditRecord")).
		Return(&domain.AuditRecord{AuditID: 3}, nil).Once()

	entry, err := suite.service.Withdraw(ctx, 1, decimal.NewFromInt(50000))

	suite.Require().NoError(err)
	suite.True(entry.FromBalance.IsZero())
}

func (suite *TransactionServiceTestSuite) TestTransfer_Success() {
	ctx := context.Background()
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{1, 2}).
		Return(map[int64]domain.Account{1: activeAccount(1, "50000"), 2: activeAccount(2, "75000")}, nil).Once()
	suite.accountRepo.On("AdjustBalance", mock.Anything, int64(1), decEq("-5000")).
		Return(decimal.NewFromInt(45000), nil).Once()
	suite.accountRepo.On("AdjustBalance", mock.Anything, int64(2), decEq("5000")).
		Return(decimal.NewFromInt(80000), nil).Once()
	suite.echoSavedEntry(4)
	suite.auditRepo.On("AppendAuditRecord", mock.Anything, mock.MatchedBy(func(r domain.AuditRecord) bool {
		return r.String() == "TRANSFER 5000 transferred from 1 → 2"
	})).Return(&domain.AuditRecord{AuditID: 4}, nil).Once()

	entry, err := suite.service.Transfer(ctx, 1, 2, decimal.NewFromInt(5000))

	suite.Require().NoError(err)
	suite.True(entry.FromBalance.Equal(decimal.NewFromInt(45000)))
	suite.True(entry.ToBalance.Equal(decimal.NewFromInt(80000)))
	suite.accountRepo.AssertExpectations(suite.T())
	suite.auditRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestTransfer_LocksInAscendingOrder() {
	ctx := context.Background()
	// Reverse direction still locks [1, 2].
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{1, 2}).
		Return(map[int64]domain.Account{1: activeAccount(1, "50000"), 2: activeAccount(2, "75000")}, nil).Once()
	suite.accountRepo.On("AdjustBalance", mock.Anything, int64(1), decEq("100")).
		Return(decimal.NewFromInt(50100), nil).Once()
	suite.accountRepo.On("AdjustBalance", mock.Anything, int64(2), decEq("-100")).
		Return(decimal.NewFromInt(74900), nil).Once()
	suite.echoSavedEntry(5)
	suite.auditRepo.On("AppendAuditRecord", mock.Anything, mock.AnythingOfType("domain.AuditRecord")).
		Return(&domain.AuditRecord{AuditID: 5}, nil).Once()

	_, err := suite.service.Transfer(ctx, 2, 1, decimal.NewFromInt(100))

	suite.Require().NoError(err)
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestTransfer_SameAccount() {
	entry, err := suite.service.Transfer(context.Background(), 1, 1, decimal.NewFromInt(100))

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrSameAccount)
	suite.Zero(suite.txManager.calls)
	suite.accountRepo.AssertNotCalled(suite.T(), "LockAccounts", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestTransfer_InvalidAmountCheckedBeforeSameAccount() {
	_, err := suite.service.Transfer(context.Background(), 1, 1, decimal.NewFromInt(-5))

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.Zero(suite.txManager.calls)
}

func (suite *TransactionServiceTestSuite) TestInvalidAmounts() {
	for _, amount := range []string{"0", "-1", "10.555"} {
		_, err := suite.service.Deposit(context.Background(), 1, decimal.RequireFromString(amount))
		suite.ErrorIs(err, apperrors.ErrInvalidAmount, "amount %s", amount)
	}
	suite.Zero(suite.txManager.calls)
}

func (suite *TransactionServiceTestSuite) TestTransfer_DestinationNotFound() {
	ctx := context.Background()
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{1, 99}).
		Return(map[int64]domain.Account{1: activeAccount(1, "50000")}, nil).Once()

	_, err := suite.service.Transfer(ctx, 1, 99, decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.Contains(err.Error(), "destination account 99")
	suite.assertNothingWritten()
}

func (suite *TransactionServiceTestSuite) TestTransfer_SourceNotFound() {
	ctx := context.Background()
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{2, 98}).
		Return(map[int64]domain.Account{2: activeAccount(2, "75000")}, nil).Once()

	_, err := suite.service.Transfer(ctx, 98, 2, decimal.NewFromInt(10))

	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.Contains(err.Error(), "source account 98")
	suite.assertNothingWritten()
}

func (suite *TransactionServiceTestSuite) TestDeposit_AccountNotFound() {
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{42}).
		Return(map[int64]domain.Account{}, nil).Once()

	_, err := suite.service.Deposit(context.Background(), 42, decimal.NewFromInt(10))

	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.assertNothingWritten()
}

func (suite *TransactionServiceTestSuite) TestDeposit_InactiveAccount() {
	inactive := activeAccount(3, "100")
	inactive.Status = domain.AccountInactive
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{3}).
		Return(map[int64]domain.Account{3: inactive}, nil).Once()

	_, err := suite.service.Deposit(context.Background(), 3, decimal.NewFromInt(10))

	suite.ErrorIs(err, apperrors.ErrAccountInactive)
	suite.assertNothingWritten()
}

func (suite *TransactionServiceTestSuite) TestAuditFailureFailsOperation() {
	ctx := context.Background()
	storageErr := apperrors.NewStorageError("failed to append audit record", assert.AnError)
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{1}).
		Return(map[int64]domain.Account{1: activeAccount(1, "50000")}, nil).Once()
	suite.accountRepo.On("AdjustBalance", mock.Anything, int64(1), decEq("1000")).
		Return(decimal.NewFromInt(51000), nil).Once()
	suite.echoSavedEntry(6)
	suite.auditRepo.On("AppendAuditRecord", mock.Anything, mock.AnythingOfType("domain.AuditRecord")).
		Return(nil, storageErr).Once()

	entry, err := suite.service.Deposit(ctx, 1, decimal.NewFromInt(1000))

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrStorageFailure)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *TransactionServiceTestSuite) TestLockFailure() {
	suite.accountRepo.On("LockAccounts", mock.Anything, []int64{1}).
		Return(nil, apperrors.NewStorageError("failed to lock accounts", assert.AnError)).Once()

	_, err := suite.service.Deposit(context.Background(), 1, decimal.NewFromInt(1))

	suite.ErrorIs(err, apperrors.ErrStorageFailure)
	suite.assertNothingWritten()
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
