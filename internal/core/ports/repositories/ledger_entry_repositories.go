package repositories

import (
	"context"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
)

// LedgerEntryReader defines read operations for the ledger entry history
type LedgerEntryReader interface {
	// ListEntriesByAccount returns entries touching the account, newest first.
	// beforeID, when set, restricts the page to entries older than that ID.
	ListEntriesByAccount(ctx context.Context, accountNo int64, limit int, beforeID *int64) ([]domain.LedgerEntry, error)
}

// LedgerEntryWriter records applied entries
type LedgerEntryWriter interface {
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
}

// LedgerEntryRepositoryFacade combines all ledger entry repository interfaces
type LedgerEntryRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}
