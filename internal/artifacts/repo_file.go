package artifacts

import (
	"context"
	"sort"

	"jobsearch-backend/internal/shared/storage/file"
)

// FileRepo persists artifacts in a flat JSON collection on disk.
type FileRepo struct {
	col *file.Collection[Artifact]
}

// NewFileRepo constructs a FileRepo backed by the given file path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{col: file.NewCollection[Artifact](path)}
}

// Upsert inserts or replaces the artifact for its (jobId, kind), keeping
// the stored id and createdAt on replace.
func (r *FileRepo) Upsert(ctx context.Context, artifact Artifact) (Artifact, error) {
	stored := artifact
	_, err := r.col.Update(ctx, func(items []Artifact) ([]Artifact, error) {
		for i := range items {
			if items[i].JobID == artifact.JobID && items[i].Kind == artifact.Kind {
				stored.ID = items[i].ID
				stored.CreatedAt = items[i].CreatedAt
				items[i] = stored
				return items, nil
			}
		}
		return append(items, stored), nil
	})
	if err != nil {
		return Artifact{}, err
	}
	return stored, nil
}

// GetByID returns an artifact by ID.
func (r *FileRepo) GetByID(ctx context.Context, id string) (Artifact, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return Artifact{}, err
	}
	for i := range items {
		if items[i].ID == id {
			return items[i], nil
		}
	}
	return Artifact{}, ErrNotFound
}

// List returns artifacts, newest update first, optionally filtered by job.
func (r *FileRepo) List(ctx context.Context, jobID string) ([]Artifact, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Artifact, 0, len(items))
	for _, item := range items {
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

var _ ArtifactsRepo = (*FileRepo)(nil)
