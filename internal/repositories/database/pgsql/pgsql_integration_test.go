package pgsql_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/trr_bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/trr_bank_ledger/internal/core/services"
	"github.com/SscSPs/trr_bank_ledger/internal/dto"
	"github.com/SscSPs/trr_bank_ledger/internal/platform/config"
	"github.com/SscSPs/trr_bank_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/trr_bank_ledger/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	sharedDSN     string
	containerErr  error
)

// startPostgres starts one PostgreSQL container for the whole test run and migrates it.
func startPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "ledger",
			"POSTGRES_PASSWORD": "ledger",
			"POSTGRES_DB":       "ledger",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://ledger:ledger@%s:%s/ledger?sslmode=disable", host, port.Port())
	if err := database.MigratePostgres(dsn, slog.Default()); err != nil {
		return "", err
	}
	return dsn, nil
}

type PgxLedgerTestSuite struct {
	suite.Suite
	ctx  context.Context
	pool *pgxpool.Pool
	svc  *portssvc.ServiceContainer
}

func (s *PgxLedgerTestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping PostgreSQL integration tests in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(s.T())
	containerOnce.Do(func() {
		sharedDSN, containerErr = startPostgres()
	})
	if containerErr != nil {
		s.T().Skipf("PostgreSQL container unavailable: %v", containerErr)
	}

	s.ctx = context.Background()
	pool, err := database.OpenPostgres(s.ctx, database.PostgresOptions{URL: sharedDSN, MaxConns: 10}, slog.Default())
	s.Require().NoError(err)
	s.pool = pool
	s.svc = services.NewServiceContainer(&config.Config{AuditDefaultLimit: 50, AuditMaxLimit: 500}, pgsql.NewRepositoryProvider(pool))
}

func (s *PgxLedgerTestSuite) TearDownSuite() {
	database.ClosePostgres(s.pool, slog.Default())
}

func (s *PgxLedgerTestSuite) SetupTest() {
	// TRUNCATE does not fire the append-only row triggers on audit_log.
	_, err := s.pool.Exec(s.ctx, "TRUNCATE audit_log, ledger_entries, accounts, customers RESTART IDENTITY CASCADE")
	s.Require().NoError(err)
}

func (s *PgxLedgerTestSuite) openAccount(name, nid string, opening int64) *domain.Account {
	customer, err := s.svc.Customer.CreateCustomer(s.ctx, dto.CreateCustomerRequest{Name: name, NationalID: nid})
	s.Require().NoError(err)
	account, err := s.svc.Account.CreateAccount(s.ctx, dto.CreateAccountRequest{
		CustomerID:     customer.CustomerID,
		OpeningBalance: dto.AmountOf(decimal.NewFromInt(opening)),
	})
	s.Require().NoError(err)
	return account
}

func (s *PgxLedgerTestSuite) balance(accountNo int64) decimal.Decimal {
	acc, err := s.svc.Account.GetAccountByNo(s.ctx, accountNo)
	s.Require().NoError(err)
	return acc.Balance
}

func (s *PgxLedgerTestSuite) auditCount() int {
	records, err := s.svc.Audit.ListAuditRecords(s.ctx, 500)
	s.Require().NoError(err)
	return len(records)
}

func (s *PgxLedgerTestSuite) TestAhmedKhanScenario() {
	s.openAccount("Ahmed Khan", "12345-6789012-3", 50000)
	s.openAccount("Sara Ali", "98765-4321098-7", 75000)
	before := s.auditCount()

	_, err := s.svc.Transaction.Withdraw(s.ctx, 1, decimal.NewFromInt(60000))
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	s.True(s.balance(1).Equal(decimal.NewFromInt(50000)))
	s.Equal(before, s.auditCount())

	_, err = s.svc.Transaction.Deposit(s.ctx, 1, decimal.NewFromInt(1000))
	s.Require().NoError(err)
	records, err := s.svc.Audit.ListAuditRecords(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("DEPOSIT +1000 → Account 1", records[0].String())

	entry, err := s.svc.Transaction.Transfer(s.ctx, 1, 2, decimal.NewFromInt(2000))
	s.Require().NoError(err)
	s.True(entry.FromBalance.Equal(decimal.NewFromInt(49000)))
	s.True(entry.ToBalance.Equal(decimal.NewFromInt(77000)))
	s.True(s.balance(1).Add(s.balance(2)).Equal(decimal.NewFromInt(126000)))
	s.Equal(before+2, s.auditCount())
}

func (s *PgxLedgerTestSuite) TestDuplicateNationalID() {
	s.openAccount("Ahmed Khan", "12345-6789012-3", 0)

	_, err := s.svc.Customer.CreateCustomer(s.ctx, dto.CreateCustomerRequest{Name: "Other", NationalID: "12345-6789012-3"})

	s.ErrorIs(err, apperrors.ErrDuplicateIdentity)
	customers, err := s.svc.Customer.ListCustomers(s.ctx)
	s.Require().NoError(err)
	s.Len(customers, 1)
}

func (s *PgxLedgerTestSuite) TestAccountNeedsCustomer() {
	_, err := s.svc.Account.CreateAccount(s.ctx, dto.CreateAccountRequest{CustomerID: 12345})
	s.ErrorIs(err, apperrors.ErrCustomerNotFound)
}

func (s *PgxLedgerTestSuite) TestConcurrentCrossingTransfersDoNotDeadlock() {
	s.openAccount("Ahmed Khan", "12345-6789012-3", 50000)
	s.openAccount("Sara Ali", "98765-4321098-7", 75000)

	const rounds = 25
	var wg sync.WaitGroup
	errs := make(chan error, 2*rounds)
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := s.svc.Transaction.Transfer(s.ctx, 1, 2, decimal.NewFromInt(100))
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := s.svc.Transaction.Transfer(s.ctx, 2, 1, decimal.NewFromInt(40))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
	b1, b2 := s.balance(1), s.balance(2)
	s.True(b1.Add(b2).Equal(decimal.NewFromInt(125000)))
	s.True(b1.Equal(decimal.NewFromInt(50000-rounds*60)), b1.String())
}

func (s *PgxLedgerTestSuite) TestConcurrentWithdrawalsNeverOverdraw() {
	s.openAccount("Ahmed Khan", "12345-6789012-3", 1000)

	const attempts = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.svc.Transaction.Withdraw(s.ctx, 1, decimal.NewFromInt(300)); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				s.ErrorIs(err, apperrors.ErrInsufficientFunds)
			}
		}()
	}
	wg.Wait()

	s.Equal(3, succeeded)
	s.True(s.balance(1).Equal(decimal.NewFromInt(100)))
}

func (s *PgxLedgerTestSuite) TestAuditLogIsAppendOnly() {
	s.openAccount("Ahmed Khan", "12345-6789012-3", 1)

	_, err := s.pool.Exec(s.ctx, "UPDATE audit_log SET details = 'tampered'")
	s.Error(err)
	_, err = s.pool.Exec(s.ctx, "DELETE FROM audit_log")
	s.Error(err)
	s.Equal(2, s.auditCount())
}

func (s *PgxLedgerTestSuite) TestEntriesPagination() {
	s.openAccount("Ahmed Khan", "12345-6789012-3", 0)
	for i := 1; i <= 3; i++ {
		_, err := s.svc.Transaction.Deposit(s.ctx, 1, decimal.NewFromInt(int64(i)))
		s.Require().NoError(err)
	}

	page, err := s.svc.Account.ListEntries(s.ctx, 1, dto.ListEntriesParams{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page.Entries, 2)
	s.True(page.Entries[0].Amount.Equal(decimal.NewFromInt(3)))
	s.Require().NotNil(page.NextToken)

	page, err = s.svc.Account.ListEntries(s.ctx, 1, dto.ListEntriesParams{Limit: 2, NextToken: *page.NextToken})
	s.Require().NoError(err)
	s.Require().Len(page.Entries, 1)
	s.True(page.Entries[0].ToBalance.Equal(decimal.NewFromInt(1)))
	s.Nil(page.NextToken)
}

func TestPgxLedger(t *testing.T) {
	suite.Run(t, new(PgxLedgerTestSuite))
}
