package sqlite

import (
	"context"
	"database/sql"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trr_bank_ledger/internal/models"
	"github.com/SscSPs/trr_bank_ledger/internal/utils/mapping"
)

type SQLiteAuditRepository struct {
	BaseRepository
}

func newSQLiteAuditRepository(db *sql.DB) *SQLiteAuditRepository {
	return &SQLiteAuditRepository{newBase(db)}
}

var _ portsrepo.AuditRepositoryFacade = (*SQLiteAuditRepository)(nil)

func (r *SQLiteAuditRepository) AppendAuditRecord(ctx context.Context, record domain.AuditRecord) (*domain.AuditRecord, error) {
	m := mapping.ToModelAuditRecord(record)
	m.CreatedAt = r.now()

	query, args, err := sq.Insert("audit_log").
		Columns("operation", "subject", "details", "created_at").
		Values(m.Operation, m.Subject, m.Details, m.CreatedAt).
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build audit insert", err)
	}

	res, err := r.Querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to append audit record", err)
	}
	if m.AuditID, err = res.LastInsertId(); err != nil {
		return nil, apperrors.NewStorageError("failed to read audit id", err)
	}

	saved := mapping.ToDomainAuditRecord(m)
	return &saved, nil
}

func (r *SQLiteAuditRepository) ListAuditRecords(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	query, args, err := sq.Select("audit_id", "operation", "subject", "details", "created_at").
		From("audit_log").
		OrderBy("audit_id DESC").
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build audit list query", err)
	}

	rows, err := r.Querier(ctx).QueryContext(ctx, query, args...)
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
