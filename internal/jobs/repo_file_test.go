package jobs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepo(filepath.Join(t.TempDir(), "jobs.json"))

	job := Job{
		ID:        "job-1",
		Title:     "Engineer",
		Company:   "Acme",
		Status:    StatusSaved,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, job); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, "job-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Company != "Acme" {
		t.Fatalf("unexpected job: %+v", got)
	}

	job.Status = StatusApplied
	if err := repo.Update(ctx, job); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.GetByID(ctx, "job-1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Status != StatusApplied {
		t.Fatalf("expected applied, got %q", got.Status)
	}

	if err := repo.Delete(ctx, "job-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "job-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileRepoUpdateMissing(t *testing.T) {
	repo := NewFileRepo(filepath.Join(t.TempDir(), "jobs.json"))
	err := repo.Update(context.Background(), Job{ID: "absent"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
