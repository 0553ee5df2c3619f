package mapping

import (
	"database/sql"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	"github.com/SscSPs/trr_bank_ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	m := models.LedgerEntry{
		EntryID:     d.EntryID,
		Kind:        string(d.Kind),
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.FromAccount != nil {
		m.FromAccount = sql.NullInt64{Int64: *d.FromAccount, Valid: true}
	}
	if d.ToAccount != nil {
		m.ToAccount = sql.NullInt64{Int64: *d.ToAccount, Valid: true}
	}
	if d.FromBalance != nil {
		m.FromBalance = decimal.NewNullDecimal(*d.FromBalance)
	}
	if d.ToBalance != nil {
		m.ToBalance = decimal.NewNullDecimal(*d.ToBalance)
	}
	return m
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	d := domain.LedgerEntry{
		EntryID:     m.EntryID,
		Kind:        domain.EntryKind(m.Kind),
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.FromAccount.Valid {
		from := m.FromAccount.Int64
		d.FromAccount = &from
	}
	if m.ToAccount.Valid {
		to := m.ToAccount.Int64
		d.ToAccount = &to
	}
	if m.FromBalance.Valid {
		bal := m.FromBalance.Decimal
		d.FromBalance = &bal
	}
	if m.ToBalance.Valid {
		bal := m.ToBalance.Decimal
		d.ToBalance = &bal
	}
	return d
}
