// Package warehouse persists completed runs into a DuckDB database for
// ad-hoc analytics. Ingestion is best-effort from the orchestrator's point
// of view; a missing warehouse never blocks an evaluation.
package warehouse

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

// schemaDDL holds the DuckDB schema definition.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the schema DDL used for initializing warehouse databases.
func SchemaDDL() string {
	return schemaDDL
}

// EnsureSchema applies the schema DDL to the provided database connection.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("warehouse: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}

// Open opens (creating if needed) the DuckDB database at path and applies
// the schema. An empty path opens an in-memory database.
func Open(path string) (*Warehouse, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open warehouse: %w", err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply warehouse schema: %w", err)
	}
	return &Warehouse{db: db}, nil
}

// Warehouse wraps one open DuckDB connection.
type Warehouse struct {
	db *sql.DB
}

// DB exposes the underlying connection for ad-hoc queries.
func (w *Warehouse) DB() *sql.DB {
	return w.db
}

// Close releases the database connection.
func (w *Warehouse) Close() error {
	return w.db.Close()
}
