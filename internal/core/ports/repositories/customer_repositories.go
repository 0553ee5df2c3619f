package repositories

import (
	"context"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID returns apperrors.ErrCustomerNotFound when no row matches.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// ListCustomers returns all customers ordered by ID.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	CountCustomers(ctx context.Context) (int64, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer inserts a customer and returns it with its assigned ID.
	// A national ID collision yields apperrors.ErrDuplicateIdentity.
	SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
