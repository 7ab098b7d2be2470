// Package store persists enriched protein tables in DuckDB so results
// can be queried with plain SQL after a run.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection holding labeled protein records.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS protein_records (
		accession VARCHAR,
		gene VARCHAR,
		description VARCHAR,
		uniprot_id VARCHAR,
		alternate_names VARCHAR,
		mouse_gene_id VARCHAR,
		cellular_location VARCHAR,
		functional_class VARCHAR,
		vehicle_rep1 DOUBLE,
		vehicle_rep2 DOUBLE,
		vehicle_mean DOUBLE,
		vehicle_sd DOUBLE,
		treatment_rep1 DOUBLE,
		treatment_rep2 DOUBLE,
		treatment_mean DOUBLE,
		treatment_sd DOUBLE,
		fold_change DOUBLE,
		log2_fold_change DOUBLE,
		log10_fold_change DOUBLE,
		uniprot_valid BOOLEAN,
		replicate_completeness VARCHAR,
		fc_type VARCHAR,
		confidence_level VARCHAR,
		PRIMARY KEY (gene, accession)
	)`); err != nil {
		return err
	}

	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		source_path VARCHAR,
		source_size BIGINT,
		record_count INTEGER,
		created_at TIMESTAMP DEFAULT current_timestamp
	)`)
	return err
}
