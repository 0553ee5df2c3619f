package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trr_bank_ledger/internal/models"
	"github.com/SscSPs/trr_bank_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var customerColumns = []string{"customer_id", "name", "national_id", "contact", "created_at"}

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row rowScanner) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(&m.CustomerID, &m.Name, &m.NationalID, &m.Contact, &m.CreatedAt)
	return m, err
}

// SaveCustomer inserts a new customer and returns it with its assigned ID.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	m := mapping.ToModelCustomer(customer)

	query, args, err := psql.Insert("customers").
		Columns("name", "national_id", "contact").
		Values(m.Name, m.NationalID, m.Contact).
		Suffix("RETURNING customer_id, created_at").
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build customer insert", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, query, args...).Scan(&m.CustomerID, &m.CreatedAt); err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to save customer %s", m.NationalID))
	}

	saved := mapping.ToDomainCustomer(m)
	return &saved, nil
}

// FindCustomerByID retrieves a customer by ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query, args, err := psql.Select(customerColumns...).
		From("customers").
		Where("customer_id = ?", customerID).
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build customer query", err)
	}

	m, err := scanCustomer(r.Querier(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.ErrCustomerNotFound, fmt.Sprintf("customer %d", customerID))
		}
		return nil, mapError(err, fmt.Sprintf("failed to find customer %d", customerID))
	}

	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

// ListCustomers returns every customer ordered by ID.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query, args, err := psql.Select(customerColumns...).
		From("customers").
		OrderBy("customer_id").
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build customer list query", err)
	}

	rows, err := r.Querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list customers")
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan customer row")
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating customer rows")
	}
	return customers, nil
}

// CountCustomers returns the number of registered customers.
func (r *PgxCustomerRepository) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.Querier(ctx).QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&n); err != nil {
		return 0, mapError(err, "failed to count customers")
	}
	return n, nil
}
