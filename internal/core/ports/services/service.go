package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Customer    CustomerSvcFacade
	Account     AccountSvcFacade
	Transaction TransactionSvc
	Audit       AuditSvc
	Seeder      SampleDataSeeder
}

// SampleDataSeeder loads demonstration customers and accounts into an empty store.
type SampleDataSeeder interface {
	// SeedSampleData reports whether data was inserted; it is a no-op when customers already exist.
	SeedSampleData(ctx context.Context) (bool, error)
}
