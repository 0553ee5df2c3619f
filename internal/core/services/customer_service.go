package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trr_bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/trr_bank_ledger/internal/dto"
)

// CustomerService registers and reads customers.
type CustomerService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	customerRepo portsrepo.CustomerRepositoryFacade
	auditRepo    portsrepo.AuditWriter
}

var _ portssvc.CustomerSvcFacade = (*CustomerService)(nil)

func NewCustomerService(txManager portsrepo.TransactionManager, customerRepo portsrepo.CustomerRepositoryFacade, auditRepo portsrepo.AuditWriter) *CustomerService {
	return &CustomerService{
		txManager:    txManager,
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
	}
}

// CreateCustomer registers a customer. The insert and its ADD CUSTOMER audit
// record commit together.
func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.Customer{
		Name:       strings.TrimSpace(req.Name),
		NationalID: strings.TrimSpace(req.NationalID),
		Contact:    strings.TrimSpace(req.Contact),
	}
	if customer.Name == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}
	if customer.NationalID == "" {
		return nil, fmt.Errorf("%w: national ID is required", apperrors.ErrValidation)
	}

	var created *domain.Customer
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		saved, err := s.customerRepo.SaveCustomer(txCtx, customer)
		if err != nil {
			return err
		}
		_, err = s.auditRepo.AppendAuditRecord(txCtx, domain.AuditRecord{
			Operation: domain.OpAddCustomer,
			Subject:   domain.SubjectCustomer,
			Details:   fmt.Sprintf("New customer: %s (CNIC: %s) → ID: %d", saved.Name, saved.NationalID, saved.CustomerID),
		})
		if err != nil {
			return err
		}
		created = saved
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create customer", slog.String("national_id", customer.NationalID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.Int64("customer_id", created.CustomerID))
	return created, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	return customers, nil
}
