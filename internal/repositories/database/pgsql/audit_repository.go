package pgsql

import (
	"context"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trr_bank_ledger/internal/models"
	"github.com/SscSPs/trr_bank_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) *PgxAuditRepository {
	return &PgxAuditRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// AppendAuditRecord inserts a record. Inside RunInTx it commits or rolls back with the caller's changes.
func (r *PgxAuditRepository) AppendAuditRecord(ctx context.Context, record domain.AuditRecord) (*domain.AuditRecord, error) {
	m := mapping.ToModelAuditRecord(record)

	query, args, err := psql.Insert("audit_log").
		Columns("operation", "subject", "details").
		Values(m.Operation, m.Subject, m.Details).
		Suffix("RETURNING audit_id, created_at").
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build audit insert", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, query, args...).Scan(&m.AuditID, &m.CreatedAt); err != nil {
		return nil, apperrors.NewStorageError("failed to append audit record", err)
	}

	saved := mapping.ToDomainAuditRecord(m)
	return &saved, nil
}

// ListAuditRecords returns the newest records first.
func (r *PgxAuditRepository) ListAuditRecords(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	query, args, err := psql.Select("audit_id", "operation", "subject", "details", "created_at").
		From("audit_log").
		OrderBy("audit_id DESC").
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build audit list query", err)
	}

	rows, err := r.Querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to list audit records", err)
	}
	defer rows.Close()

	records := make([]domain.AuditRecord, 0, max(limit, 0))
	for rows.Next() {
		var m models.AuditRecord
		if err := rows.Scan(&m.AuditID, &m.Operation, &m.Subject, &m.Details, &m.CreatedAt); err != nil {
			return nil, apperrors.NewStorageError("failed to scan audit row", err)
		}
		records = append(records, mapping.ToDomainAuditRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating audit rows", err)
	}
	return records, nil
}
