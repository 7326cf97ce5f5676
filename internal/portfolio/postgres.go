package portfolio

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTable is the portfolio table name.
const DefaultTable = "portfolio"

// DBPool is the subset of *pgxpool.Pool the store needs.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// PostgresStore reads portfolio entries from a table of (techstack, link) rows.
type PostgresStore struct {
	pool  DBPool
	table string
}

// Connect opens a pool to databaseURL and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return NewPostgresStoreWithPool(pool, DefaultTable), nil
}

// NewPostgresStoreWithPool wraps an existing pool.
func NewPostgresStoreWithPool(pool DBPool, table string) *PostgresStore {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresStore{pool: pool, table: table}
}

// Close closes the underlying pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema creates the portfolio table if it does not exist.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id SERIAL PRIMARY KEY,
		techstack TEXT NOT NULL,
		link TEXT NOT NULL UNIQUE
	)`, s.table)
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create %s table: %w", s.table, err)
	}
	return nil
}

// Import upserts entries by link and returns how many rows were written.
func (s *PostgresStore) Import(ctx context.Context, entries []Entry) (int, error) {
	query := fmt.Sprintf(`INSERT INTO %s (techstack, link) VALUES ($1, $2)
		ON CONFLICT (link) DO UPDATE SET techstack = EXCLUDED.techstack`, s.table)

	written := 0
	for _, e := range entries {
		if _, err := s.pool.Exec(ctx, query, e.Techstack, e.Link); err != nil {
			return written, fmt.Errorf("failed to import %s: %w", e.Link, err)
		}
		written++
	}
	return written, nil
}

// Entries loads every row in insertion order.
func (s *PostgresStore) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf("SELECT techstack, link FROM %s ORDER BY id", s.table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Techstack, &e.Link); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", s.table, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", s.table, err)
	}
	return entries, nil
}

// Query implements Store. Rows are read per call so edits to the table show up
// without a restart.
func (s *PostgresStore) Query(ctx context.Context, skills []string, n int) ([]string, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return Match(entries, skills, n), nil
}
