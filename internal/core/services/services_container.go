package services

import (
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trr_bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/trr_bank_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	customers := NewCustomerService(repos.TxManager, repos.CustomerRepo, repos.AuditRepo)
	accounts := NewAccountService(repos.TxManager, repos.AccountRepo, repos.CustomerRepo, repos.AuditRepo, repos.EntryRepo)

	return &portssvc.ServiceContainer{
		Customer:    customers,
		Account:     accounts,
		Transaction: NewTransactionService(repos.TxManager, repos.AccountRepo, repos.EntryRepo, repos.AuditRepo),
		Audit:       NewAuditService(repos.AuditRepo, WithAuditLimits(cfg.AuditDefaultLimit, cfg.AuditMaxLimit)),
		Seeder:      NewSeedService(repos.TxManager, repos.CustomerRepo, customers, accounts),
	}
}
