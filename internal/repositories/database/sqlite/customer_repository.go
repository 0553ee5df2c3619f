package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trr_bank_ledger/internal/models"
	"github.com/SscSPs/trr_bank_ledger/internal/utils/mapping"
)

var customerColumns = []string{"customer_id", "name", "national_id", "contact", "created_at"}

type SQLiteCustomerRepository struct {
	BaseRepository
}

func newSQLiteCustomerRepository(db *sql.DB) *SQLiteCustomerRepository {
	return &SQLiteCustomerRepository{newBase(db)}
}

var _ portsrepo.CustomerRepositoryFacade = (*SQLiteCustomerRepository)(nil)

func scanCustomer(row rowScanner) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(&m.CustomerID, &m.Name, &m.NationalID, &m.Contact, &m.CreatedAt)
	return m, err
}

func (r *SQLiteCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	m := mapping.ToModelCustomer(customer)
	m.CreatedAt = r.now()

	query, args, err := sq.Insert("customers").
		Columns("name", "national_id", "contact", "created_at").
		Values(m.Name, m.NationalID, m.Contact, m.CreatedAt).
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build customer insert", err)
	}

	res, err := r.Querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to save customer %s", m.NationalID), nil)
	}
	if m.CustomerID, err = res.LastInsertId(); err != nil {
		return nil, apperrors.NewStorageError("failed to read customer id", err)
	}

	saved := mapping.ToDomainCustomer(m)
	return &saved, nil
}

func (r *SQLiteCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query, args, err := sq.Select(customerColumns...).
		From("customers").
		Where("customer_id = ?", customerID).
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build customer query", err)
	}

	m, err := scanCustomer(r.Querier(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.ErrCustomerNotFound, fmt.Sprintf("customer %d", customerID))
		}
		return nil, mapError(err, fmt.Sprintf("failed to find customer %d", customerID), nil)
	}

	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

func (r *SQLiteCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query, args, err := sq.Select(customerColumns...).
		From("customers").
		OrderBy("customer_id").
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build customer list query", err)
	}

	rows, err := r.Querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list customers", nil)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan customer row", nil)
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating customer rows", nil)
	}
	return customers, nil
}

func (r *SQLiteCustomerRepository) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.Querier(ctx).QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&n); err != nil {
		return 0, mapError(err, "failed to count customers", nil)
	}
	return n, nil
}
