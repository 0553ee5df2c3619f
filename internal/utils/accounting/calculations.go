package accounting

import (
	"fmt"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceChanges returns the signed delta each account touched by the entry receives.
// Deposits credit the destination, withdrawals debit the source, transfers do both.
func BalanceChanges(entry domain.LedgerEntry) map[int64]decimal.Decimal {
	changes := make(map[int64]decimal.Decimal, 2)
	if entry.FromAccount != nil {
		changes[*entry.FromAccount] = changes[*entry.FromAccount].Sub(entry.Amount)
	}
	if entry.ToAccount != nil {
		changes[*entry.ToAccount] = changes[*entry.ToAccount].Add(entry.Amount)
	}
	return changes
}

// NetChange is the total amount of money an entry adds to (or removes from) the bank.
func NetChange(changes map[int64]decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, delta := range changes {
		sum = sum.Add(delta)
	}
	return sum
}

// ValidateConservation checks that a set of balance changes matches the kind of entry:
// a transfer must not create or destroy money, a deposit adds exactly the amount and a
// withdrawal removes exactly the amount.
func ValidateConservation(entry domain.LedgerEntry, changes map[int64]decimal.Decimal) error {
	net := NetChange(changes)
	var want decimal.Decimal
	switch entry.Kind {
	case domain.EntryTransfer:
		want = decimal.Zero
	case domain.EntryDeposit:
		want = entry.Amount
	case domain.EntryWithdraw:
		want = entry.Amount.Neg()
	default:
		return fmt.Errorf("unknown entry kind '%s'", entry.Kind)
	}
	if !net.Equal(want) {
		return fmt.Errorf("%s entry changes total balance by %s, expected %s", entry.Kind, net.String(), want.String())
	}
	return nil
}

// SufficientFunds reports whether balance can absorb a (possibly negative) delta without going below zero.
func SufficientFunds(balance, delta decimal.Decimal) bool {
	return !balance.Add(delta).IsNegative()
}
