package domain_test

import (
	"testing"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   domain.LedgerEntry
		wantErr error
	}{
		{
			name:  "valid deposit",
			entry: domain.NewDeposit(1, decimal.NewFromInt(1000)),
		},
		{
			name:  "valid withdrawal with cents",
			entry: domain.NewWithdrawal(1, decimal.RequireFromString("10.25")),
		},
		{
			name:  "valid transfer",
			entry: domain.NewTransfer(1, 2, decimal.NewFromInt(2000)),
		},
		{
			name:    "zero amount",
			entry:   domain.NewDeposit(1, decimal.Zero),
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			entry:   domain.NewWithdrawal(1, decimal.NewFromInt(-5)),
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "too many decimal places",
			entry:   domain.NewDeposit(1, decimal.RequireFromString("0.001")),
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "same account transfer",
			entry:   domain.NewTransfer(3, 3, decimal.NewFromInt(10)),
			wantErr: apperrors.ErrSameAccount,
		},
		{
			name:    "same account transfer with bad amount reports amount first",
			entry:   domain.NewTransfer(3, 3, decimal.NewFromInt(-1)),
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "deposit without destination",
			entry:   domain.LedgerEntry{Kind: domain.EntryDeposit, Amount: decimal.NewFromInt(1)},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "unknown kind",
			entry:   domain.LedgerEntry{Kind: "REFUND", Amount: decimal.NewFromInt(1)},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLedgerEntry_AccountNosAscending(t *testing.T) {
	assert.Equal(t, []int64{2, 7}, domain.NewTransfer(7, 2, decimal.NewFromInt(1)).AccountNos())
	assert.Equal(t, []int64{2, 7}, domain.NewTransfer(2, 7, decimal.NewFromInt(1)).AccountNos())
	assert.Equal(t, []int64{4}, domain.NewDeposit(4, decimal.NewFromInt(1)).AccountNos())
}

func TestLedgerEntry_Details(t *testing.T) {
	deposit := domain.NewDeposit(1, decimal.NewFromInt(1000))
	assert.Equal(t, "+1000 → Account 1", deposit.Details())

	withdrawal := domain.NewWithdrawal(1, decimal.NewFromInt(500))
	bal := decimal.NewFromInt(49500)
	withdrawal.FromBalance = &bal
	assert.Equal(t, "-500 ← Account 1 (New Bal: 49500)", withdrawal.Details())

	transfer := domain.NewTransfer(1, 2, decimal.NewFromInt(2000))
	assert.Equal(t, "2000 transferred from 1 → 2", transfer.Details())
}

func TestAuditRecord_String(t *testing.T) {
	rec := domain.AuditRecord{Operation: domain.OpDeposit, Details: "+1000 → Account 1"}
	assert.Equal(t, "DEPOSIT +1000 → Account 1", rec.String())
}
