// Package sqlite provides a SQLite-based catalog store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. A single database file holds one catalog
// and is exposed through two wrapper types:
//
//   - CatalogSource: reads the catalog in its stored order
//   - CatalogWriter: replaces the stored catalog in one transaction
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
