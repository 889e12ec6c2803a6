// Package history records every external program mtcli launches so past tester runs
// and compiles can be listed later.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wizzomafizzo/mtcli/internal/database"
)

// Entry is one finished external invocation.
type Entry struct {
	StartedAt  time.Time
	ID         string
	Executable string
	Args       []string
	Duration   time.Duration
	ExitCode   int
}

// Store persists entries in the runs table.
type Store struct {
	db *database.Manager
}

// NewStore wraps an opened database manager.
func NewStore(db *database.Manager) *Store {
	return &Store{db: db}
}

// Open opens (or creates) the history database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := database.NewManager(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return NewStore(db), nil
}

// Record stores e, assigning an ID when it has none.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	args, err := json.Marshal(e.Args)
	if err != nil {
		return fmt.Errorf("failed to marshal args: %w", err)
	}
	_, err = s.db.DB().ExecContext(ctx,
		"INSERT INTO runs (id, executable, args, exit_code, started_at, duration_ms) VALUES (?, ?, ?, ?, ?, ?)",
		e.ID, e.Executable, string(args), e.ExitCode, e.StartedAt.UnixMilli(), e.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.DB().QueryContext(ctx,
		"SELECT id, executable, args, exit_code, started_at, duration_ms FROM runs ORDER BY started_at DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			args       string
			startedAt  int64
			durationMS int64
		)
		if err := rows.Scan(&e.ID, &e.Executable, &args, &e.ExitCode, &startedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(args), &e.Args); err != nil {
			return nil, fmt.Errorf("failed to decode args of run %s: %w", e.ID, err)
		}
		e.StartedAt = time.UnixMilli(startedAt)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return entries, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}
