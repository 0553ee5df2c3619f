package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trr_bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/trr_bank_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

type sampleAccount struct {
	accountType string
	balance     int64
}

type sampleCustomer struct {
	customer dto.CreateCustomerRequest
	accounts []sampleAccount
}

var sampleData = []sampleCustomer{
	{
		customer: dto.CreateCustomerRequest{Name: "Ahmed Khan", NationalID: "12345-6789012-3", Contact: "0300-1234567"},
		accounts: []sampleAccount{{"Savings", 50000}, {"Current", 20000}},
	},
	{
		customer: dto.CreateCustomerRequest{Name: "Sara Ali", NationalID: "98765-4321098-7", Contact: "0311-9876543"},
		accounts: []sampleAccount{{"Savings", 75000}},
	},
}

// SeedService loads demonstration data into an empty store.
type SeedService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	customerRepo portsrepo.CustomerReader
	customers    portssvc.CustomerWriterSvc
	accounts     portssvc.AccountWriterSvc
}

var _ portssvc.SampleDataSeeder = (*SeedService)(nil)

func NewSeedService(txManager portsrepo.TransactionManager, customerRepo portsrepo.CustomerReader, customers portssvc.CustomerWriterSvc, accounts portssvc.AccountWriterSvc) *SeedService {
	return &SeedService{
		txManager:    txManager,
		customerRepo: customerRepo,
		customers:    customers,
		accounts:     accounts,
	}
}

// SeedSampleData creates the sample customers and accounts through the regular
// services, so every creation is audited. Everything runs in one transaction.
func (s *SeedService) SeedSampleData(ctx context.Context) (bool, error) {
	seeded := false
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.customerRepo.CountCustomers(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, sample := range sampleData {
			customer, err := s.customers.CreateCustomer(txCtx, sample.customer)
			if err != nil {
				return err
			}
			for _, acc := range sample.accounts {
				_, err := s.accounts.CreateAccount(txCtx, dto.CreateAccountRequest{
					CustomerID:     customer.CustomerID,
					AccountType:    acc.accountType,
					OpeningBalance: dto.AmountOf(decimal.NewFromInt(acc.balance)),
				})
				if err != nil {
					return err
				}
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to seed sample data")
		return false, err
	}

	if seeded {
		s.LogInfo(ctx, "Sample data seeded", slog.Int("customers", len(sampleData)))
	} else {
		s.LogInfo(ctx, "Store already has customers, skipping sample data")
	}
	return seeded, nil
}
