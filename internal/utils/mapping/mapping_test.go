package mapping_test

import (
	"testing"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/SscSPs/trr_bank_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerEntryMapping_NullableSides(t *testing.T) {
	deposit := domain.NewDeposit(3, decimal.NewFromInt(10))
	bal := decimal.NewFromInt(110)
	deposit.ToBalance = &bal

	m := mapping.ToModelLedgerEntry(deposit)
	assert.False(t, m.FromAccount.Valid)
	assert.False(t, m.FromBalance.Valid)
	assert.True(t, m.ToAccount.Valid)
	assert.Equal(t, int64(3), m.ToAccount.Int64)

	back := mapping.ToDomainLedgerEntry(m)
	assert.Nil(t, back.FromAccount)
	assert.Nil(t, back.FromBalance)
	assert.Equal(t, int64(3), *back.ToAccount)
	assert.True(t, back.ToBalance.Equal(bal))
}

func TestCustomerMapping_EmptyContactIsNull(t *testing.T) {
	m := mapping.ToModelCustomer(domain.Customer{Name: "Sara Ali", NationalID: "98765-4321098-7"})
	assert.False(t, m.Contact.Valid)

	m = mapping.ToModelCustomer(domain.Customer{Name: "Sara Ali", NationalID: "98765-4321098-7", Contact: "0311-9876543"})
	assert.True(t, m.Contact.Valid)
	assert.Equal(t, "0311-9876543", mapping.ToDomainCustomer(m).Contact)
}
