package artifacts

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ArtifactsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Artifact
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Upsert inserts or replaces the artifact for its (jobId, kind), keeping
// the stored id and createdAt on replace.
func (r *MemoryRepo) Upsert(ctx context.Context, artifact Artifact) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.data {
		if r.data[i].JobID == artifact.JobID && r.data[i].Kind == artifact.Kind {
			artifact.ID = r.data[i].ID
			artifact.CreatedAt = r.data[i].CreatedAt
			r.data[i] = artifact
			return artifact, nil
		}
	}
	r.data = append(r.data, artifact)
	return artifact, nil
}

// GetByID returns an artifact by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.data {
		if r.data[i].ID == id {
			return r.data[i], nil
		}
	}
	return Artifact{}, ErrNotFound
}

// List returns artifacts, newest update first, optionally filtered by job.
func (r *MemoryRepo) List(ctx context.Context, jobID string) ([]Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Artifact, 0, len(r.data))
	for _, item := range r.data {
		if jobID != "" && item.JobID != jobID {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

var _ ArtifactsRepo = (*MemoryRepo)(nil)
