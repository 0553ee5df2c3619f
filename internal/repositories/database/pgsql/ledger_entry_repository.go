package pgsql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trr_bank_ledger/internal/models"
	"github.com/SscSPs/trr_bank_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

var entryColumns = []string{"entry_id", "kind", "from_account", "to_account", "amount", "from_balance", "to_balance", "created_at"}

type PgxLedgerEntryRepository struct {
	BaseRepository
}

func newPgxLedgerEntryRepository(pool *pgxpool.Pool) *PgxLedgerEntryRepository {
	return &PgxLedgerEntryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerEntryRepositoryFacade = (*PgxLedgerEntryRepository)(nil)

func scanEntry(row rowScanner) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(&m.EntryID, &m.Kind, &m.FromAccount, &m.ToAccount, &m.Amount, &m.FromBalance, &m.ToBalance, &m.CreatedAt)
	return m, err
}

// SaveEntry records an applied entry.
func (r *PgxLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)

	query, args, err := psql.Insert("ledger_entries").
		Columns("kind", "from_account", "to_account", "amount", "from_balance", "to_balance").
		Values(m.Kind, m.FromAccount, m.ToAccount, m.Amount, m.FromBalance, m.ToBalance).
		Suffix("RETURNING entry_id, created_at").
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build ledger entry insert", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, query, args...).Scan(&m.EntryID, &m.CreatedAt); err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to save %s entry", m.Kind))
	}

	saved := mapping.ToDomainLedgerEntry(m)
	return &saved, nil
}

// ListEntriesByAccount returns entries touching the account, newest first.
func (r *PgxLedgerEntryRepository) ListEntriesByAccount(ctx context.Context, accountNo int64, limit int, beforeID *int64) ([]domain.LedgerEntry, error) {
	builder := psql.Select(entryColumns...).
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

	rows, err := r.Querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to list entries for account %d", accountNo))
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0, max(limit, 0))
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan ledger entry row")
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating ledger entry rows")
	}
	return entries, nil
}
