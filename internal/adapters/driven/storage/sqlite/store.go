package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/cboldwyn/dc-label/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/cboldwyn/dc-label/internal/core/domain"
	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// the override and run-history store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.dclabel/data/labels.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".dclabel", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "labels.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// OverrideStore returns an OverrideStore interface backed by this store.
func (s *Store) OverrideStore() driven.OverrideStore {
	return &overrideStore{store: s}
}

// RunStore returns a RunStore interface backed by this store.
func (s *Store) RunStore() driven.RunStore {
	return &runStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Override Store ====================

// overrideStore implements driven.OverrideStore.
type overrideStore struct {
	store *Store
}

var _ driven.OverrideStore = (*overrideStore)(nil)

// GetOverride returns the stored override for a package label.
func (s *overrideStore) GetOverride(ctx context.Context, packageLabel string) (int, bool, error) {
	var count int
	err := s.store.db.QueryRowContext(ctx, `
		SELECT label_count FROM label_overrides WHERE package_label = ?
	`, packageLabel).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("querying override: %w", err)
	}
	return count, true, nil
}

// SetOverride stores or replaces an override.
func (s *overrideStore) SetOverride(ctx context.Context, packageLabel string, count int) error {
	if packageLabel == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO label_overrides (package_label, label_count, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(package_label) DO UPDATE SET
			label_count = excluded.label_count,
			updated_at = excluded.updated_at
	`, packageLabel, count, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("saving override: %w", err)
	}
	return nil
}

// ClearOverride removes an override. Clearing a missing override is
// not an error.
func (s *overrideStore) ClearOverride(ctx context.Context, packageLabel string) error {
	_, err := s.store.db.ExecContext(ctx,
		"DELETE FROM label_overrides WHERE package_label = ?", packageLabel)
	if err != nil {
		return fmt.Errorf("clearing override: %w", err)
	}
	return nil
}

// ListOverrides returns all stored overrides keyed by package label.
func (s *overrideStore) ListOverrides(ctx context.Context) (map[string]int, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT package_label, label_count FROM label_overrides
	`)
	if err != nil {
		return nil, fmt.Errorf("querying overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[string]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("scanning override: %w", err)
		}
		overrides[label] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating overrides: %w", err)
	}

	return overrides, nil
}

// ==================== Run Store ====================

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// SaveRun stores one batch run. Runs without an ID are assigned one.
func (s *runStore) SaveRun(ctx context.Context, run domain.BatchRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO batch_runs (id, filename, mode, labels, skipped, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Filename, string(run.Mode), run.Labels, run.Skipped, run.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving batch run: %w", err)
	}
	return nil
}

// ListRuns returns stored runs, most recent first.
func (s *runStore) ListRuns(ctx context.Context, limit int) ([]domain.BatchRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, filename, mode, labels, skipped, created_at
		FROM batch_runs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying batch runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.BatchRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		var run domain.BatchRun
		var mode string
		var createdAt sql.NullTime
		if err := rows.Scan(&run.ID, &run.Filename, &mode, &run.Labels, &run.Skipped, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning batch run: %w", err)
		}
		run.Mode = domain.Mode(mode)
		if createdAt.Valid {
			run.CreatedAt = createdAt.Time
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating batch runs: %w", err)
	}

	return runs, nil
}
