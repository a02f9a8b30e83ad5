package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-insight/internal/types"
)

// SaveAnalysis appends an analysis record. A missing ID is assigned a fresh
// UUID and written back to the record. Analyses are append-only: re-analyzing
// a resume adds a record, it never overwrites one.
func (s *Store) SaveAnalysis(ctx context.Context, analysis *types.ResumeAnalysis) error {
	if analysis.ID == "" {
		analysis.ID = uuid.NewString()
	}

	scoresJSON, err := json.Marshal(analysis.ComponentScores)
	if err != nil {
		return fmt.Errorf("failed to marshal component scores: %w", err)
	}
	externalJSON, err := json.Marshal(analysis.External)
	if err != nil {
		return fmt.Errorf("failed to marshal external analysis: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		`INSERT INTO analyses (id, resume_id, filename, component_scores, external_analysis, is_best)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		analysis.ID, analysis.ResumeID, analysis.Filename, scoresJSON, externalJSON, analysis.IsBest,
	).Scan(&analysis.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysis retrieves an analysis by ID. Returns nil when no record exists.
func (s *Store) GetAnalysis(ctx context.Context, id string) (*types.ResumeAnalysis, error) {
	analysis, err := s.scanAnalysis(s.pool.QueryRow(ctx,
		`SELECT id, resume_id, filename, component_scores, external_analysis, is_best, created_at
		 FROM analyses WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return analysis, nil
}

// ListAnalyses retrieves the analyses for a resume, newest first. An empty
// resumeID lists every analysis.
func (s *Store) ListAnalyses(ctx context.Context, resumeID string) ([]types.ResumeAnalysis, error) {
	query := `SELECT id, resume_id, filename, component_scores, external_analysis, is_best, created_at
		FROM analyses`
	args := []any{}
	if resumeID != "" {
		query += ` WHERE resume_id = $1`
		args = append(args, resumeID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []types.ResumeAnalysis
	for rows.Next() {
		analysis, err := s.scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, *analysis)
	}
	return analyses, nil
}

// MarkBest flags one analysis as the best and clears the flag on every other
// record, in a single transaction so readers never see zero or two best rows.
func (s *Store) MarkBest(ctx context.Context, analysisID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `UPDATE analyses SET is_best = FALSE WHERE is_best`); err != nil {
		return fmt.Errorf("failed to clear best flags: %w", err)
	}

	result, err := tx.Exec(ctx, `UPDATE analyses SET is_best = TRUE WHERE id = $1`, analysisID)
	if err != nil {
		return fmt.Errorf("failed to set best flag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", analysisID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit best flag: %w", err)
	}
	return nil
}

func (s *Store) scanAnalysis(row pgx.Row) (*types.ResumeAnalysis, error) {
	var analysis types.ResumeAnalysis
	var scoresJSON, externalJSON []byte

	if err := row.Scan(&analysis.ID, &analysis.ResumeID, &analysis.Filename,
		&scoresJSON, &externalJSON, &analysis.IsBest, &analysis.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(scoresJSON, &analysis.ComponentScores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal component scores: %w", err)
	}
	if err := json.Unmarshal(externalJSON, &analysis.External); err != nil {
		return nil, fmt.Errorf("failed to unmarshal external analysis: %w", err)
	}
	return &analysis, nil
}
