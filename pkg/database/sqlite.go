package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDSN builds a go-sqlite3 DSN for a database file. Transactions start
// with BEGIN IMMEDIATE so writers serialize on the database lock instead of
// failing on upgrade, and a busy timeout lets waiting writers queue.
func SQLiteDSN(path string) string {
	params := url.Values{}
	params.Set("_busy_timeout", "5000")
	params.Set("_journal_mode", "WAL")
	params.Set("_foreign_keys", "on")
	params.Set("_txlock", "immediate")
	return "file:" + path + "?" + params.Encode()
}

// OpenSQLite opens the SQLite database at path. A single connection is kept
// open, so reads queue behind a running write transaction and never observe
// uncommitted balances.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}

	db, err := sql.Open("sqlite3", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	slog.Info("Successfully opened SQLite database.", slog.String("path", path))
	return db, nil
}
