package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveCatalogDocument stores a new job catalog document. Documents are kept
// append-only; the recommendation engine always reads the latest one.
func (s *Store) SaveCatalogDocument(ctx context.Context, document []byte) (string, error) {
	id := uuid.NewString()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO job_catalogs (id, document) VALUES ($1, $2)`,
		id, document,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save catalog document: %w", err)
	}
	return id, nil
}

// LatestCatalogDocument retrieves the newest job catalog document. Returns
// nil when none has been stored.
func (s *Store) LatestCatalogDocument(ctx context.Context) ([]byte, error) {
	var document []byte
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM job_catalogs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load catalog document: %w", err)
	}
	return document, nil
}

// CatalogSource adapts the store to the recommendation engine's catalog
// source interface.
type CatalogSource struct {
	Store *Store
}

// Fetch returns the latest stored catalog document.
func (c CatalogSource) Fetch(ctx context.Context) ([]byte, error) {
	document, err := c.Store.LatestCatalogDocument(ctx)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, fmt.Errorf("no job catalog document stored")
	}
	return document, nil
}
