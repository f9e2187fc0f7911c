package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"mercator-hq/callisto/pkg/config"
)

// RecordKind distinguishes the analysis operations tracked in the history.
type RecordKind string

const (
	KindEnumeration RecordKind = "enumeration"
	KindValidation  RecordKind = "validation"
)

// Record is one analysis history entry.
type Record struct {
	ID        string        // Assigned on insert when empty
	Kind      RecordKind    // Operation kind
	ModelName string        // Model name from the document, may be empty
	Source    string        // Document source (path or upload name)
	Features  int           // Features in the model
	Products  int           // Minimal products found (enumeration only)
	Valid     bool          // Validation outcome (validation only)
	Truncated bool          // Enumeration hit the product ceiling
	Duration  time.Duration // Wall time of the run
	CreatedAt time.Time     // Assigned on insert when zero
}

const schema = `
CREATE TABLE IF NOT EXISTS analysis_history (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	model_name TEXT NOT NULL,
	source     TEXT NOT NULL,
	features   INTEGER NOT NULL,
	products   INTEGER NOT NULL,
	valid      INTEGER NOT NULL,
	truncated  INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_created_at ON analysis_history(created_at);
`

// Store is the SQLite-backed analysis history.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if necessary) the history database at the configured
// path and initializes the schema.
func Open(cfg config.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	s := &Store{
		db:     db,
		logger: slog.Default().With("component", "store"),
	}

	if err := s.initialize(cfg); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Info("history store opened", "path", cfg.Path)
	return s, nil
}

// initialize enables WAL mode, sets the busy timeout, and creates the schema.
func (s *Store) initialize(cfg config.StoreConfig) error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", cfg.BusyTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Record inserts one history entry, assigning an ID and timestamp if unset.
func (s *Store) Record(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analysis_history
			(id, kind, model_name, source, features, products, valid, truncated, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Kind), rec.ModelName, rec.Source,
		rec.Features, rec.Products, rec.Valid, rec.Truncated,
		rec.Duration.Milliseconds(), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record analysis: %w", err)
	}
	return nil
}

// List returns the most recent history entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, model_name, source, features, products, valid, truncated, duration_ms, created_at
		FROM analysis_history
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec := &Record{}
		var kind string
		var durationMs int64
		if err := rows.Scan(
			&rec.ID, &kind, &rec.ModelName, &rec.Source,
			&rec.Features, &rec.Products, &rec.Valid, &rec.Truncated,
			&durationMs, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		rec.Kind = RecordKind(kind)
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the total number of history entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analysis_history`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}

// Prune removes entries created before the cutoff and returns how many were
// deleted.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM analysis_history WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.logger.Info("history pruned", "deleted", deleted, "cutoff", cutoff)
	}
	return deleted, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
