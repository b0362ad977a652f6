package artifacts

import "context"

// ArtifactsRepo defines persistence operations for artifacts.
type ArtifactsRepo interface {
	// Upsert inserts the artifact, or replaces the existing one with the
	// same (jobId, kind). On replace, the stored artifact keeps its
	// original id and createdAt; everything else comes from the argument.
	Upsert(ctx context.Context, artifact Artifact) (Artifact, error)
	GetByID(ctx context.Context, id string) (Artifact, error)
	// List returns artifacts, optionally filtered by job. An empty jobID
	// returns everything.
	List(ctx context.Context, jobID string) ([]Artifact, error)
}
