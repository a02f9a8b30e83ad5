// Package store provides PostgreSQL persistence for resumes, analysis
// records, job catalog documents and users.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema creates the tables the store needs if they do not exist yet.
func (s *Store) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			filename TEXT NOT NULL,
			file_type TEXT NOT NULL,
			upload_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			file_size BIGINT NOT NULL DEFAULT 0,
			parsed_text TEXT NOT NULL,
			facts JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			filename TEXT NOT NULL,
			component_scores JSONB NOT NULL,
			external_analysis JSONB NOT NULL,
			is_best BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS analyses_resume_id_idx ON analyses (resume_id)`,
		`CREATE TABLE IF NOT EXISTS job_catalogs (
			id UUID PRIMARY KEY,
			document JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
