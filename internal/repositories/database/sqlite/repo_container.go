package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every SQLite repository around one database handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:    newTxManager(db),
		CustomerRepo: newSQLiteCustomerRepository(db),
		AccountRepo:  newSQLiteAccountRepository(db),
		AuditRepo:    newSQLiteAuditRepository(db),
		EntryRepo:    newSQLiteLedgerEntryRepository(db),
	}
}
