// Package store keeps a SQLite history of solver runs. Only answers are stored;
// grids are never persisted.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gearscan/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	day INTEGER NOT NULL,
	part INTEGER NOT NULL,
	variant TEXT NOT NULL,
	answer TEXT NOT NULL DEFAULT '',
	error TEXT NOT NULL DEFAULT '',
	elapsed_ns INTEGER NOT NULL,
	input_sha256 TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// Run is one recorded solver run.
type Run struct {
	ID          string
	Day         int
	Part        int
	Variant     string
	Answer      string
	Error       string
	Elapsed     time.Duration
	InputSHA256 string
	CreatedAt   time.Time
}

// LocalStore is the SQLite-backed run history.
type LocalStore struct {
	db     *sql.DB
	mu     sync.Mutex
	dbPath string
	logger *zap.Logger
}

// NewLocalStore opens (creating if needed) the database at path.
func NewLocalStore(path string, logger *zap.Logger) (*LocalStore, error) {
	log := logging.For(logger, logging.CategoryStore)
	timer := logging.StartTimer(log, "open store")
	defer timer.Stop()

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		log.Debug("failed to set busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Debug("store ready", zap.String("path", path))
	return &LocalStore{db: db, dbPath: path, logger: log}, nil
}

// Record stores r, assigning an ID and creation time when they are unset.
func (s *LocalStore) Record(ctx context.Context, r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, day, part, variant, answer, error, elapsed_ns, input_sha256, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Day, r.Part, r.Variant, r.Answer, r.Error, int64(r.Elapsed), r.InputSHA256, r.CreatedAt.UnixNano(),
	)
	if err != nil {
		s.logger.Error("failed to record run", zap.String("id", r.ID), zap.Error(err))
		return r, fmt.Errorf("failed to record run: %w", err)
	}

	s.logger.Debug("run recorded", zap.String("id", r.ID), zap.Int("part", r.Part), zap.String("variant", r.Variant))
	return r, nil
}

// Recent returns up to limit runs, newest first.
func (s *LocalStore) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, day, part, variant, answer, error, elapsed_ns, input_sha256, created_at
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			elapsed   int64
			createdAt int64
		)
		if err := rows.Scan(&r.ID, &r.Day, &r.Part, &r.Variant, &r.Answer, &r.Error, &elapsed, &r.InputSHA256, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Elapsed = time.Duration(elapsed)
		r.CreatedAt = time.Unix(0, createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return runs, nil
}

// Path returns the database file path.
func (s *LocalStore) Path() string { return s.dbPath }

// Close closes the database.
func (s *LocalStore) Close() error {
	return s.db.Close()
}
