package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary

	"squ1d/pkg/logging"
)

//go:embed schema.sql
var schema string

// Visit is one navigation recorded in the visit log.
type Visit struct {
	ID        int64
	URL       string
	VisitedAt time.Time
}

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mock_history

// Recorder records navigations.
type Recorder interface {
	Record(ctx context.Context, url string) error
}

// Store is the persistent visit log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the visit log at path.
func Open(ctx context.Context, path string) (*Store, error) {
	const dirPerm = 0o750
	log := logging.FromContext(ctx)

	if path == "" {
		return nil, errors.New("history database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite is single-writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	log.Debug().Str("path", path).Msg("visit log opened")
	return &Store{db: db}, nil
}

// Record appends a visit to url at the current time.
func (s *Store) Record(ctx context.Context, url string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (url, visited_at) VALUES (?, ?)`,
		url, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// Recent returns up to limit visits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	if limit <= 0 {
		return []Visit{}, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, visited_at FROM visits ORDER BY visited_at DESC, id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("querying visits: %w", err)
	}
	defer rows.Close()

	visits := []Visit{}
	for rows.Next() {
		var v Visit
		var ms int64
		if err := rows.Scan(&v.ID, &v.URL, &ms); err != nil {
			return nil, fmt.Errorf("scanning visit: %w", err)
		}
		v.VisitedAt = time.UnixMilli(ms).UTC()
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// Count returns the number of recorded visits.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting visits: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
