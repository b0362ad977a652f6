package artifacts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertReturnsStoredIdentity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	originalCreatedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	artifact := Artifact{
		ID:          "artifact-new",
		JobID:       "job-1",
		Kind:        KindResume,
		JobTitle:    "Platform Engineer",
		Company:     "Acme",
		Summary:     "summary",
		Body:        "body",
		Content:     []byte(`{"summary":"summary"}`),
		DocumentKey: "artifacts/job-1/resume.docx",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	// The conflicting row wins the identity columns.
	mock.ExpectQuery("INSERT INTO artifacts").
		WithArgs(
			artifact.ID,
			artifact.JobID,
			artifact.Kind,
			artifact.JobTitle,
			artifact.Company,
			artifact.Summary,
			artifact.Body,
			sqlmock.AnyArg(), // content
			sqlmock.AnyArg(), // document_key
			sqlmock.AnyArg(), // render_error
			artifact.CreatedAt,
			artifact.UpdatedAt,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow("artifact-existing", originalCreatedAt))

	stored, err := repo.Upsert(context.Background(), artifact)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if stored.ID != "artifact-existing" {
		t.Fatalf("expected stored id from conflicting row, got %q", stored.ID)
	}
	if !stored.CreatedAt.Equal(originalCreatedAt) {
		t.Fatalf("expected stored created_at preserved, got %v", stored.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM artifacts").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "job_id", "kind", "job_title", "company", "summary", "body",
			"content", "document_key", "render_error", "created_at", "updated_at",
		}))

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListFiltersByJob(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "job_id", "kind", "job_title", "company", "summary", "body",
		"content", "document_key", "render_error", "created_at", "updated_at",
	}).AddRow(
		"artifact-1", "job-1", KindResume, "Platform Engineer", "Acme",
		"summary", "body", []byte(`{}`), nil, "template missing", now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM artifacts").
		WithArgs("job-1").
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(items))
	}
	if items[0].DocumentKey != "" {
		t.Fatalf("expected empty document key for NULL column, got %q", items[0].DocumentKey)
	}
	if items[0].RenderError != "template missing" {
		t.Fatalf("unexpected render error: %q", items[0].RenderError)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
