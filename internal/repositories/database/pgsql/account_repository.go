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
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var accountColumns = []string{"a.account_no", "a.customer_id", "a.account_type", "a.balance", "a.status", "a.created_at"}

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row rowScanner, extra ...any) (models.Account, error) {
	var m models.Account
	dest := append([]any{&m.AccountNo, &m.CustomerID, &m.AccountType, &m.Balance, &m.Status, &m.CreatedAt}, extra...)
	err := row.Scan(dest...)
	return m, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m := mapping.ToModelAccount(account)

	query, args, err := psql.Insert("accounts").
		Columns("customer_id", "account_type", "balance", "status").
		Values(m.CustomerID, m.AccountType, m.Balance, m.Status).
		Suffix("RETURNING account_no, created_at").
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build account insert", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, query, args...).Scan(&m.AccountNo, &m.CreatedAt); err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to save account for customer %d", m.CustomerID))
	}

	saved := mapping.ToDomainAccount(m)
	return &saved, nil
}

// FindAccountByNo retrieves an account by its number.
func (r *PgxAccountRepository) FindAccountByNo(ctx context.Context, accountNo int64) (*domain.Account, error) {
	query, args, err := psql.Select(accountColumns...).
		From("accounts a").
		Where("a.account_no = ?", accountNo).
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build account query", err)
	}

	m, err := scanAccount(r.Querier(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.ErrAccountNotFound, fmt.Sprintf("account %d", accountNo))
		}
		return nil, mapError(err, fmt.Sprintf("failed to find account %d", accountNo))
	}

	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccounts returns every account joined to its owner's name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.AccountWithOwner, error) {
	query, args, err := psql.Select(append(accountColumns, "c.name")...).
		From("accounts a").
		Join("customers c ON c.customer_id = a.customer_id").
		OrderBy("a.account_no").
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build account list query", err)
	}

	rows, err := r.Querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list accounts")
	}
	defer rows.Close()

	accounts := make([]domain.AccountWithOwner, 0)
	for rows.Next() {
		var owner string
		m, err := scanAccount(rows, &owner)
		if err != nil {
			return nil, mapError(err, "failed to scan account row")
		}
		accounts = append(accounts, mapping.ToDomainAccountWithOwner(models.AccountWithOwner{Account: m, OwnerName: owner}))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating account rows")
	}
	return accounts, nil
}

// LockAccounts selects the accounts and locks them FOR UPDATE in ascending
// account number order, so two transactions over the same pair always queue
// instead of deadlocking.
func (r *PgxAccountRepository) LockAccounts(ctx context.Context, accountNos []int64) (map[int64]domain.Account, error) {
	tx, err := r.requireTx(ctx, "failed to lock accounts")
	if err != nil {
		return nil, err
	}
	if len(accountNos) == 0 {
		return map[int64]domain.Account{}, nil
	}

	query, args, err := psql.Select(accountColumns...).
		From("accounts a").
		Where("a.account_no = ANY(?)", lo.Uniq(accountNos)).
		OrderBy("a.account_no").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build account lock query", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to lock accounts")
	}
	defer rows.Close()

	locked := make(map[int64]domain.Account, len(accountNos))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan locked account row")
		}
		locked[m.AccountNo] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating locked account rows")
	}
	return locked, nil
}

// AdjustBalance adds delta to the balance. The guard in the WHERE clause and
// the table's CHECK constraint both refuse a negative result.
func (r *PgxAccountRepository) AdjustBalance(ctx context.Context, accountNo int64, delta decimal.Decimal) (decimal.Decimal, error) {
	tx, err := r.requireTx(ctx, "failed to adjust balance")
	if err != nil {
		return decimal.Zero, err
	}

	var newBalance decimal.Decimal
	err = tx.QueryRow(ctx, `
		UPDATE accounts
		SET balance = balance + $2
		WHERE account_no = $1 AND balance + $2 >= 0
		RETURNING balance;
	`, accountNo, delta).Scan(&newBalance)
	if err == nil {
		return newBalance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, mapError(err, fmt.Sprintf("failed to adjust balance of account %d", accountNo))
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM accounts WHERE account_no = $1)", accountNo).Scan(&exists); err != nil {
		return decimal.Zero, mapError(err, fmt.Sprintf("failed to check account %d", accountNo))
	}
	if !exists {
		return decimal.Zero, apperrors.NewNotFoundError(apperrors.ErrAccountNotFound, fmt.Sprintf("account %d", accountNo))
	}
	return decimal.Zero, fmt.Errorf("%w: account %d", apperrors.ErrInsufficientFunds, accountNo)
}
