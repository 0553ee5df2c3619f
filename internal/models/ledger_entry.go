package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the ledger_entries table row.
type LedgerEntry struct {
	EntryID     int64               `db:"entry_id"`
	Kind        string              `db:"kind"`
	FromAccount sql.NullInt64       `db:"from_account"`
	ToAccount   sql.NullInt64       `db:"to_account"`
	Amount      decimal.Decimal     `db:"amount"`
	FromBalance decimal.NullDecimal `db:"from_balance"`
	ToBalance   decimal.NullDecimal `db:"to_balance"`
	AuditFields
}
