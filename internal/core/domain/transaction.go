package domain

import (
	"fmt"
	"slices"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EntryKind is the kind of balance movement recorded by a LedgerEntry.
type EntryKind string

const (
	EntryDeposit  EntryKind = "DEPOSIT"
	EntryWithdraw EntryKind = "WITHDRAW"
	EntryTransfer EntryKind = "TRANSFER"
)

// AmountScale is the number of fractional digits an amount may carry.
const AmountScale = 2

// LedgerEntry is one committed balance movement. Deposits only carry a
// destination, withdrawals only a source, transfers both.
// FromBalance and ToBalance hold the resulting balances once applied.
type LedgerEntry struct {
	EntryID     int64            `json:"entryId"`
	Kind        EntryKind        `json:"kind"`
	FromAccount *int64           `json:"fromAccount,omitempty"`
	ToAccount   *int64           `json:"toAccount,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	FromBalance *decimal.Decimal `json:"fromBalance,omitempty"`
	ToBalance   *decimal.Decimal `json:"toBalance,omitempty"`
	AuditFields
}

func NewDeposit(accountNo int64, amount decimal.Decimal) LedgerEntry {
	return LedgerEntry{Kind: EntryDeposit, ToAccount: &accountNo, Amount: amount}
}

func NewWithdrawal(accountNo int64, amount decimal.Decimal) LedgerEntry {
	return LedgerEntry{Kind: EntryWithdraw, FromAccount: &accountNo, Amount: amount}
}

func NewTransfer(from, to int64, amount decimal.Decimal) LedgerEntry {
	return LedgerEntry{Kind: EntryTransfer, FromAccount: &from, ToAccount: &to, Amount: amount}
}

// ValidateAmount checks that an amount is strictly positive and has at most AmountScale fractional digits.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("%w: amount %s has more than %d decimal places", apperrors.ErrInvalidAmount, amount.String(), AmountScale)
	}
	return nil
}

// Validate checks the entry before any store access. The amount is checked
// before the same-account rule.
func (e LedgerEntry) Validate() error {
	if err := ValidateAmount(e.Amount); err != nil {
		return err
	}
	switch e.Kind {
	case EntryDeposit:
		if e.ToAccount == nil || e.FromAccount != nil {
			return fmt.Errorf("%w: deposit needs exactly one destination account", apperrors.ErrValidation)
		}
	case EntryWithdraw:
		if e.FromAccount == nil || e.ToAccount != nil {
			return fmt.Errorf("%w: withdrawal needs exactly one source account", apperrors.ErrValidation)
		}
	case EntryTransfer:
		if e.FromAccount == nil || e.ToAccount == nil {
			return fmt.Errorf("%w: transfer needs a source and a destination account", apperrors.ErrValidation)
		}
		if *e.FromAccount == *e.ToAccount {
			return fmt.Errorf("%w: account %d", apperrors.ErrSameAccount, *e.FromAccount)
		}
	default:
		return fmt.Errorf("%w: unknown entry kind '%s'", apperrors.ErrValidation, e.Kind)
	}
	return nil
}

// AccountNos returns the accounts touched by the entry in ascending order.
// Row locks are always taken in this order.
func (e LedgerEntry) AccountNos() []int64 {
	nos := make([]int64, 0, 2)
	if e.FromAccount != nil {
		nos = append(nos, *e.FromAccount)
	}
	if e.ToAccount != nil {
		nos = append(nos, *e.ToAccount)
	}
	slices.Sort(nos)
	return slices.Compact(nos)
}

// AuditOperation is the audit operation name for this entry kind.
func (e LedgerEntry) AuditOperation() string {
	return string(e.Kind)
}

// Details is the human-readable audit text for an applied entry.
func (e LedgerEntry) Details() string {
	switch e.Kind {
	case EntryDeposit:
		return fmt.Sprintf("+%s → Account %d", e.Amount.String(), deref(e.ToAccount))
	case EntryWithdraw:
		newBal := "?"
		if e.FromBalance != nil {
			newBal = e.FromBalance.String()
		}
		return fmt.Sprintf("-%s ← Account %d (New Bal: %s)", e.Amount.String(), deref(e.FromAccount), newBal)
	case EntryTransfer:
		return fmt.Sprintf("%s transferred from %d → %d", e.Amount.String(), deref(e.FromAccount), deref(e.ToAccount))
	}
	return string(e.Kind)
}

func deref(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
