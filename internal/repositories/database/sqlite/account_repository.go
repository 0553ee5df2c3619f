package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trr_bank_ledger/internal/models"
	"github.com/SscSPs/trr_bank_ledger/internal/utils/accounting"
	"github.com/SscSPs/trr_bank_ledger/internal/utils/mapping"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var accountColumns = []string{"a.account_no", "a.customer_id", "a.account_type", "a.balance", "a.status", "a.created_at"}

type SQLiteAccountRepository struct {
	BaseRepository
}

func newSQLiteAccountRepository(db *sql.DB) *SQLiteAccountRepository {
	return &SQLiteAccountRepository{newBase(db)}
}

var _ portsrepo.AccountRepositoryFacade = (*SQLiteAccountRepository)(nil)

func scanAccount(row rowScanner, extra ...any) (models.Account, error) {
	var m models.Account
	dest := append([]any{&m.AccountNo, &m.CustomerID, &m.AccountType, &m.Balance, &m.Status, &m.CreatedAt}, extra...)
	err := row.Scan(dest...)
	return m, err
}

func (r *SQLiteAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m := mapping.ToModelAccount(account)
	m.CreatedAt = r.now()

	query, args, err := sq.Insert("accounts").
		Columns("customer_id", "account_type", "balance", "status", "created_at").
		Values(m.CustomerID, m.AccountType, m.Balance, m.Status, m.CreatedAt).
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build account insert", err)
	}

	res, err := r.Querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("failed to save account for customer %d", m.CustomerID), apperrors.ErrCustomerNotFound)
	}
	if m.AccountNo, err = res.LastInsertId(); err != nil {
		return nil, apperrors.NewStorageError("failed to read account number", err)
	}

	saved := mapping.ToDomainAccount(m)
	return &saved, nil
}

func (r *SQLiteAccountRepository) FindAccountByNo(ctx context.Context, accountNo int64) (*domain.Account, error) {
	query, args, err := sq.Select(accountColumns...).
		From("accounts a").
		Where("a.account_no = ?", accountNo).
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build account query", err)
	}

	m, err := scanAccount(r.Querier(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.ErrAccountNotFound, fmt.Sprintf("account %d", accountNo))
		}
		return nil, mapError(err, fmt.Sprintf("failed to find account %d", accountNo), nil)
	}

	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *SQLiteAccountRepository) ListAccounts(ctx context.Context) ([]domain.AccountWithOwner, error) {
	query, args, err := sq.Select(append(accountColumns, "c.name")...).
		From("accounts a").
		Join("customers c ON c.customer_id = a.customer_id").
		OrderBy("a.account_no").
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build account list query", err)
	}

	rows, err := r.Querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list accounts", nil)
	}
	defer rows.Close()

	accounts := make([]domain.AccountWithOwner, 0)
	for rows.Next() {
		var owner string
		m, err := scanAccount(rows, &owner)
		if err != nil {
			return nil, mapError(err, "failed to scan account row", nil)
		}
		accounts = append(accounts, mapping.ToDomainAccountWithOwner(models.AccountWithOwner{Account: m, OwnerName: owner}))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating account rows", nil)
	}
	return accounts, nil
}

// LockAccounts reads the accounts inside the current transaction. The
// transaction already owns the database write lock, so no row lock is needed.
func (r *SQLiteAccountRepository) LockAccounts(ctx context.Context, accountNos []int64) (map[int64]domain.Account, error) {
	tx, err := r.requireTx(ctx, "failed to lock accounts")
	if err != nil {
		return nil, err
	}
	if len(accountNos) == 0 {
		return map[int64]domain.Account{}, nil
	}

	query, args, err := sq.Select(accountColumns...).
		From("accounts a").
		Where(squirrel.Eq{"a.account_no": lo.Uniq(accountNos)}).
		OrderBy("a.account_no").
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build account lock query", err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to lock accounts", nil)
	}
	defer rows.Close()

	locked := make(map[int64]domain.Account, len(accountNos))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan locked account row", nil)
		}
		locked[m.AccountNo] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating locked account rows", nil)
	}
	return locked, nil
}

// AdjustBalance computes the new balance in decimal arithmetic, since SQLite
// would coerce the stored text to a float.
func (r *SQLiteAccountRepository) AdjustBalance(ctx context.Context, accountNo int64, delta decimal.Decimal) (decimal.Decimal, error) {
	tx, err := r.requireTx(ctx, "failed to adjust balance")
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = tx.QueryRowContext(ctx, "SELECT balance FROM accounts WHERE account_no = ?", accountNo).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, apperrors.NewNotFoundError(apperrors.ErrAccountNotFound, fmt.Sprintf("account %d", accountNo))
		}
		return decimal.Zero, mapError(err, fmt.Sprintf("failed to read balance of account %d", accountNo), nil)
	}

	if !accounting.SufficientFunds(balance, delta) {
		return decimal.Zero, fmt.Errorf("%w: account %d", apperrors.ErrInsufficientFunds, accountNo)
	}

	newBalance := balance.Add(delta)
	if _, err := tx.ExecContext(ctx, "UPDATE accounts SET balance = ? WHERE account_no = ?", newBalance, accountNo); err != nil {
		return decimal.Zero, mapError(err, fmt.Sprintf("failed to adjust balance of account %d", accountNo), nil)
	}
	return newBalance, nil
}
