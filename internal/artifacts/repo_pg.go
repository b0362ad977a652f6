package artifacts

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements ArtifactsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces the artifact for its (jobId, kind). The
// UNIQUE(job_id, kind) constraint drives the conflict; the stored row keeps
// its id and created_at on replace.
func (r *PGRepo) Upsert(ctx context.Context, artifact Artifact) (Artifact, error) {
	const query = `
INSERT INTO artifacts (
    id, job_id, kind, job_title, company, summary, body, content,
    document_key, render_error, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (job_id, kind) DO UPDATE SET
    job_title = EXCLUDED.job_title,
    company = EXCLUDED.company,
    summary = EXCLUDED.summary,
    body = EXCLUDED.body,
    content = EXCLUDED.content,
    document_key = EXCLUDED.document_key,
    render_error = EXCLUDED.render_error,
    updated_at = EXCLUDED.updated_at
RETURNING id, created_at`

	var documentKey sql.NullString
	if artifact.DocumentKey != "" {
		documentKey = sql.NullString{String: artifact.DocumentKey, Valid: true}
	}
	var renderError sql.NullString
	if artifact.RenderError != "" {
		renderError = sql.NullString{String: artifact.RenderError, Valid: true}
	}

	err := r.DB.QueryRowContext(
		ctx,
		query,
		artifact.ID,
		artifact.JobID,
		artifact.Kind,
		artifact.JobTitle,
		artifact.Company,
		artifact.Summary,
		artifact.Body,
		[]byte(artifact.Content),
		documentKey,
		renderError,
		artifact.CreatedAt,
		artifact.UpdatedAt,
	).Scan(&artifact.ID, &artifact.CreatedAt)
	if err != nil {
		return Artifact{}, err
	}
	return artifact, nil
}

// GetByID returns an artifact by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Artifact, error) {
	const query = `
SELECT id, job_id, kind, job_title, company, summary, body, content, document_key, render_error, created_at, updated_at
FROM artifacts
WHERE id = $1
LIMIT 1`
	artifact, err := scanArtifact(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artifact{}, ErrNotFound
		}
		return Artifact{}, err
	}
	return artifact, nil
}

// List returns artifacts, newest update first, optionally filtered by job.
func (r *PGRepo) List(ctx context.Context, jobID string) ([]Artifact, error) {
	const query = `
SELECT id, job_id, kind, job_title, company, summary, body, content, document_key, render_error, created_at, updated_at
FROM artifacts
WHERE ($1 = '' OR job_id = $1)
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Artifact
	for rows.Next() {
		artifact, err := scanArtifact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, artifact)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtifact(row rowScanner) (Artifact, error) {
	var artifact Artifact
	var content []byte
	var documentKey sql.NullString
	var renderError sql.NullString
	err := row.Scan(
		&artifact.ID,
		&artifact.JobID,
		&artifact.Kind,
		&artifact.JobTitle,
		&artifact.Company,
		&artifact.Summary,
		&artifact.Body,
		&content,
		&documentKey,
		&renderError,
		&artifact.CreatedAt,
		&artifact.UpdatedAt,
	)
	if err != nil {
		return Artifact{}, err
	}
	artifact.Content = content
	if documentKey.Valid {
		artifact.DocumentKey = documentKey.String
	}
	if renderError.Valid {
		artifact.RenderError = renderError.String
	}
	return artifact, nil
}

var _ ArtifactsRepo = (*PGRepo)(nil)
