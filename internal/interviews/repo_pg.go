package interviews

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements SessionsRepo using Postgres. Messages and the final
// assessment are stored as JSONB documents.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new session.
func (r *PGRepo) Create(ctx context.Context, session Session) (Session, error) {
	const query = `
INSERT INTO interview_sessions (id, job_id, messages, question_count, feedback, created_at, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	messages, feedback, err := encodeSessionJSON(session)
	if err != nil {
		return Session{}, err
	}
	_, err = r.DB.ExecContext(
		ctx,
		query,
		session.ID,
		session.JobID,
		messages,
		session.QuestionCount,
		feedback,
		session.CreatedAt,
		session.CompletedAt,
	)
	if err != nil {
		return Session{}, err
	}
	return session, nil
}

// GetByID returns a session by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Session, error) {
	const query = `
SELECT id, job_id, messages, question_count, feedback, created_at, completed_at
FROM interview_sessions
WHERE id = $1
LIMIT 1`
	session, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	return session, nil
}

// Update replaces a stored session.
func (r *PGRepo) Update(ctx context.Context, session Session) (Session, error) {
	const query = `
UPDATE interview_sessions
SET messages = $2, question_count = $3, feedback = $4, completed_at = $5
WHERE id = $1`

	messages, feedback, err := encodeSessionJSON(session)
	if err != nil {
		return Session{}, err
	}
	res, err := r.DB.ExecContext(
		ctx,
		query,
		session.ID,
		messages,
		session.QuestionCount,
		feedback,
		session.CompletedAt,
	)
	if err != nil {
		return Session{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Session{}, err
	}
	if affected == 0 {
		return Session{}, ErrNotFound
	}
	return session, nil
}

// List returns sessions, newest first, optionally filtered by job.
func (r *PGRepo) List(ctx context.Context, jobID string) ([]Session, error) {
	const query = `
SELECT id, job_id, messages, question_count, feedback, created_at, completed_at
FROM interview_sessions
WHERE ($1 = '' OR job_id = $1)
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, session)
	}
	return out, rows.Err()
}

func encodeSessionJSON(session Session) (messages []byte, feedback any, err error) {
	if session.Messages == nil {
		session.Messages = []Message{}
	}
	messages, err = json.Marshal(session.Messages)
	if err != nil {
		return nil, nil, err
	}
	if session.Feedback == nil {
		return messages, nil, nil
	}
	encoded, err := json.Marshal(session.Feedback)
	if err != nil {
		return nil, nil, err
	}
	return messages, encoded, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var session Session
	var messages []byte
	var feedback []byte
	var completedAt sql.NullTime
	err := row.Scan(
		&session.ID,
		&session.JobID,
		&messages,
		&session.QuestionCount,
		&feedback,
		&session.CreatedAt,
		&completedAt,
	)
	if err != nil {
		return Session{}, err
	}
	if len(messages) > 0 {
		if err := json.Unmarshal(messages, &session.Messages); err != nil {
			return Session{}, err
		}
	}
	if len(feedback) > 0 {
		var assessment Assessment
		if err := json.Unmarshal(feedback, &assessment); err != nil {
			return Session{}, err
		}
		session.Feedback = &assessment
	}
	if completedAt.Valid {
		t := completedAt.Time
		session.CompletedAt = &t
	}
	return session, nil
}

var _ SessionsRepo = (*PGRepo)(nil)
