package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trr_bank_ledger/internal/models"
	"github.com/SscSPs/trr_bank_ledger/internal/utils/mapping"
)

var entryColumns = []string{"entry_id", "kind", "from_account", "to_account", "amount", "from_balance", "to_balance", "created_at"}

type SQLiteLedgerEntryRepository struct {
	BaseRepository
}

func newSQLiteLedgerEntryRepository(db *sql.DB) *SQLiteLedgerEntryRepository {
	return &SQLiteLedgerEntryRepository{newBase(db)}
}

var _ portsrepo.LedgerEntryRepositoryFacade = (*SQLiteLedgerEntryRepository)(nil)

func scanEntry(row rowScanner) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(&m.EntryID, &m.Kind, &m.FromAccount, &m.ToAccount, &m.Amount, &m.FromBalance, &m.ToBalance, &m.CreatedAt)
	return m, err
}

func (r *SQLiteLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)
	m.CreatedAt = r.now()

	query, args, err := sq.Insert("ledger_entries").
		Columns("kind", "from_account", "to_account", "amount", "from_balance", "to_balance", "created_at").
		Values(m.Kind, m.FromAccount, m.ToAccount, m.Amount, m.FromBalance, m.ToBalance, m.CreatedAt).
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build ledger entry insert", err)
	}

	res, err := r.Querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to save %s entry", m.Kind), apperrors.ErrAccountNotFound)
	}
	if m.EntryID, err = res.LastInsertId(); err != nil {
		return nil, apperrors.NewStorageError("failed to read entry id", err)
	}

	saved := mapping.ToDomainLedgerEntry(m)
	return &saved, nil
}

func (r *SQLiteLedgerEntryRepository) ListEntriesByAccount(ctx context.Context, accountNo int64, limit int, beforeID *int64) ([]domain.LedgerEntry, error) {
	builder := sq.Select(entryColumns...).
		From("ledger_entries").
		Where(squirrel.Or{squirrel.Eq{"from_account": accountNo}, squirrel.Eq{"to_account": accountNo}}).
		OrderBy("entry_id DESC").
		Limit(uint64(max(limit, 0)))
	if beforeID != nil {
		builder = builder.Where(squirrel.Lt{"entry_id": *beforeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build ledger entry query", err)
	}

	rows, err := r.Querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to list entries for account %d", accountNo), nil)
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0, max(limit, 0))
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan ledger entry row", nil)
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating ledger entry rows", nil)
	}
	return entries, nil
}
