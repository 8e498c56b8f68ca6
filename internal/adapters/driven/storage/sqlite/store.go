package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/proconnect-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
	"github.com/custodia-labs/proconnect-cli/internal/core/ports/driven"
)

// Store is a SQLite database holding one professional catalog.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates the catalog database at path and migrates it.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty database path", domain.ErrInvalidInput)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: path,
	}

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

// CatalogSource returns a CatalogSource backed by this store.
func (s *Store) CatalogSource() driven.CatalogSource {
	return &catalogSource{store: s}
}

// CatalogWriter returns a CatalogWriter backed by this store.
func (s *Store) CatalogWriter() driven.CatalogWriter {
	return &catalogWriter{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
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

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_catalog.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

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

// ==================== Catalog Source ====================

// catalogSource implements driven.CatalogSource.
type catalogSource struct {
	store *Store
}

var _ driven.CatalogSource = (*catalogSource)(nil)

// Name returns the database path.
func (c *catalogSource) Name() string {
	return c.store.path
}

// Load reads every professional in stored order.
func (c *catalogSource) Load(ctx context.Context) ([]domain.Professional, error) {
	rows, err := c.store.db.QueryContext(ctx, `
		SELECT id, name, category, subcategory, location, price, price_unit, rating, reviews, image
		FROM professionals
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying professionals: %w", err)
	}
	defer rows.Close()

	var out []domain.Professional
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating professionals: %w", err)
	}
	return out, nil
}

// ==================== Catalog Writer ====================

// catalogWriter implements driven.CatalogWriter.
type catalogWriter struct {
	store *Store
}

var _ driven.CatalogWriter = (*catalogWriter)(nil)

// Write replaces the stored catalog with entries in one transaction.
func (c *catalogWriter) Write(ctx context.Context, entries []domain.Professional) (err error) {
	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM professionals"); err != nil {
		return fmt.Errorf("clearing professionals: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO professionals
			(position, id, name, category, subcategory, location, price, price_unit, rating, reviews, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range entries {
		_, err = stmt.ExecContext(ctx, i, p.ID, p.Name, string(p.Category), p.Subcategory,
			string(p.Location), p.Price, p.PriceUnit, p.Rating, p.Reviews, p.Image)
		if err != nil {
			return fmt.Errorf("inserting professional %d: %w", p.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}
	return nil
}

// ==================== Helpers ====================

func scanProfessional(rows *sql.Rows) (domain.Professional, error) {
	var (
		p                  domain.Professional
		category, location string
	)
	err := rows.Scan(&p.ID, &p.Name, &category, &p.Subcategory, &location,
		&p.Price, &p.PriceUnit, &p.Rating, &p.Reviews, &p.Image)
	if err != nil {
		return domain.Professional{}, fmt.Errorf("scanning professional: %w", err)
	}
	p.Category = domain.Category(category)
	p.Location = domain.Location(location)
	return p, nil
}
