package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trr_bank_ledger/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql builds queries with PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

type txKey struct{}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// txFromCtx returns the transaction started by TxManager.RunInTx, if any.
func txFromCtx(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// Querier returns the transaction carried by ctx, or the pool outside a transaction.
func (r *BaseRepository) Querier(ctx context.Context) querier {
	if tx, ok := txFromCtx(ctx); ok {
		return tx
	}
	return r.Pool
}

// requireTx returns the current transaction or an error for operations that
// must not run in autocommit mode.
func (r *BaseRepository) requireTx(ctx context.Context, op string) (pgx.Tx, error) {
	tx, ok := txFromCtx(ctx)
	if !ok {
		return nil, apperrors.NewStorageError(op, errors.New("must be called inside a transaction"))
	}
	return tx, nil
}

// TxManager implements portsrepo.TransactionManager on a pgx pool.
type TxManager struct {
	BaseRepository
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

func newTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{BaseRepository{Pool: pool}}
}

// RunInTx runs fn inside a READ COMMITTED transaction. A call nested in an
// existing transaction joins it.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return apperrors.NewStorageError("failed to begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to rollback transaction", slog.String("error", rbErr.Error()))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewStorageError("failed to commit transaction", err)
	}
	return nil
}

// mapError translates PostgreSQL constraint violations into business errors
// and wraps everything else as a storage failure.
func mapError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if pgErr.ConstraintName == "customers_national_id_key" {
				return fmt.Errorf("%w: %s", apperrors.ErrDuplicateIdentity, pgErr.Detail)
			}
		case "23503": // foreign_key_violation
			if pgErr.ConstraintName == "accounts_customer_id_fkey" {
				return fmt.Errorf("%w: %s", apperrors.ErrCustomerNotFound, pgErr.Detail)
			}
			return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, pgErr.Detail)
		case "23514": // check_violation
			if pgErr.ConstraintName == "accounts_balance_non_negative" {
				return apperrors.ErrInsufficientFunds
			}
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, pgErr.Message)
		}
	}
	return apperrors.NewStorageError(msg, err)
}
