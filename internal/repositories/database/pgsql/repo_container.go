package pgsql

import (
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every PostgreSQL repository around one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:    newTxManager(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool),
		AccountRepo:  newPgxAccountRepository(dbPool),
		AuditRepo:    newPgxAuditRepository(dbPool),
		EntryRepo:    newPgxLedgerEntryRepository(dbPool),
	}
}
