package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-insight/internal/dedup"
	"github.com/jonathan/resume-insight/internal/types"
)

// SaveResume stores a resume record. A missing ID is assigned a fresh UUID
// and written back to the record.
func (s *Store) SaveResume(ctx context.Context, resume *types.Resume) error {
	if resume.ID == "" {
		resume.ID = uuid.NewString()
	}

	factsJSON, err := json.Marshal(resume.Facts)
	if err != nil {
		return fmt.Errorf("failed to marshal resume facts: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO resumes (id, filename, file_type, upload_date, file_size, parsed_text, facts)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		resume.ID, resume.Filename, string(resume.FileType), resume.UploadDate,
		resume.FileSize, resume.ParsedText, factsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// GetResume retrieves a resume by ID. Returns nil when no record exists.
func (s *Store) GetResume(ctx context.Context, id string) (*types.Resume, error) {
	var resume types.Resume
	var fileType string
	var factsJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, filename, file_type, upload_date, file_size, parsed_text, facts
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.Filename, &fileType, &resume.UploadDate,
		&resume.FileSize, &resume.ParsedText, &factsJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	resume.FileType = types.FileType(fileType)
	if err := json.Unmarshal(factsJSON, &resume.Facts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume facts: %w", err)
	}
	return &resume, nil
}

// ListResumes retrieves resumes ordered by upload date, newest first.
func (s *Store) ListResumes(ctx context.Context, limit int) ([]types.Resume, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, filename, file_type, upload_date, file_size, parsed_text, facts
		 FROM resumes ORDER BY upload_date DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []types.Resume
	for rows.Next() {
		var resume types.Resume
		var fileType string
		var factsJSON []byte
		if err := rows.Scan(&resume.ID, &resume.Filename, &fileType, &resume.UploadDate,
			&resume.FileSize, &resume.ParsedText, &factsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resume.FileType = types.FileType(fileType)
		if err := json.Unmarshal(factsJSON, &resume.Facts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume facts: %w", err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, nil
}

// corpusLimit caps the duplicate detection corpus to the oldest records.
const corpusLimit = 100

// ResumeCorpus returns the masked text of stored resumes, oldest first, as
// the corpus for duplicate detection.
func (s *Store) ResumeCorpus(ctx context.Context) ([]dedup.CorpusEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, facts->>'masked_text' FROM resumes ORDER BY upload_date ASC LIMIT $1`,
		corpusLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume corpus: %w", err)
	}
	defer rows.Close()

	var corpus []dedup.CorpusEntry
	for rows.Next() {
		var entry dedup.CorpusEntry
		if err := rows.Scan(&entry.ID, &entry.Text); err != nil {
			return nil, fmt.Errorf("failed to scan corpus entry: %w", err)
		}
		corpus = append(corpus, entry)
	}
	return corpus, nil
}

// DeleteResume removes a resume and its analyses via cascade.
func (s *Store) DeleteResume(ctx context.Context, id string) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}
