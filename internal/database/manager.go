// Package database opens the mtcli SQLite database and keeps its schema current.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// filePragmas apply to on-disk databases, which several mtcli processes may share.
var filePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA temp_store = MEMORY",
}

// Manager owns the connection pool of one database file.
type Manager struct {
	db *sql.DB
}

// NewManager opens dsn, applies pragmas and migrates the schema to the latest version.
func NewManager(ctx context.Context, dsn string) (*Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: sees its own empty database
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if dsn != MemoryDSN {
		for _, pragma := range filePragmas {
			if _, err := db.ExecContext(ctx, pragma); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
			}
		}
	}

	manager := &Manager{db: db}
	if err := manager.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return manager, nil
}

// DB returns the underlying pool.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// Version reports the schema version stored in user_version.
func (m *Manager) Version(ctx context.Context) (int, error) {
	var version int
	if err := m.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Close closes the pool. It is safe on a zero Manager.
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	if err := m.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
