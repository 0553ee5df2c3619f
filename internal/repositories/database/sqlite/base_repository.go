package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/trr_bank_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trr_bank_ledger/internal/middleware"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// sq builds queries with "?" placeholders.
var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

type txKey struct{}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB  *sql.DB
	now func() time.Time
}

func newBase(db *sql.DB) BaseRepository {
	return BaseRepository{DB: db, now: func() time.Time { return time.Now().UTC() }}
}

func txFromCtx(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// Querier returns the transaction carried by ctx, or the database outside a transaction.
func (r *BaseRepository) Querier(ctx context.Context) querier {
	if tx, ok := txFromCtx(ctx); ok {
		return tx
	}
	return r.DB
}

func (r *BaseRepository) requireTx(ctx context.Context, op string) (*sql.Tx, error) {
	tx, ok := txFromCtx(ctx)
	if !ok {
		return nil, apperrors.NewStorageError(op, errors.New("must be called inside a transaction"))
	}
	return tx, nil
}

// TxManager implements portsrepo.TransactionManager on database/sql. The DSN
// built by database.SQLiteDSN makes every transaction BEGIN IMMEDIATE, so the
// write lock is held from the first statement.
type TxManager struct {
	BaseRepository
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

func newTxManager(db *sql.DB) *TxManager {
	return &TxManager{newBase(db)}
}

// RunInTx runs fn inside a transaction. A call nested in an existing transaction joins it.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewStorageError("failed to begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to rollback transaction", slog.String("error", rbErr.Error()))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("failed to commit transaction", err)
	}
	return nil
}

// mapError translates SQLite constraint violations into business errors.
// fkKind is returned for foreign key failures, since SQLite does not name the constraint.
func mapError(err error, msg string, fkKind error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateIdentity, sqliteErr.Error())
		case sqlite3.ErrConstraintForeignKey:
			if fkKind != nil {
				return fmt.Errorf("%w: %s", fkKind, sqliteErr.Error())
			}
		case sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, sqliteErr.Error())
		}
	}
	return apperrors.NewStorageError(msg, err)
}
