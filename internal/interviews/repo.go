package interviews

import "context"

// SessionsRepo persists interview sessions.
type SessionsRepo interface {
	Create(ctx context.Context, session Session) (Session, error)
	GetByID(ctx context.Context, id string) (Session, error)
	Update(ctx context.Context, session Session) (Session, error)
	// List returns sessions, newest first. Empty jobID returns all.
	List(ctx context.Context, jobID string) ([]Session, error)
}
