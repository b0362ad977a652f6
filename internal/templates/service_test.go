package templates_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"jobsearch-backend/internal/shared/storage/object/local"
	"jobsearch-backend/internal/templates"
)

func docxBytes(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTemplatesUploadReplacesActive(t *testing.T) {
	ctx := context.Background()
	svc := templates.NewService(templates.NewMemoryRepo(), local.New(t.TempDir()))

	first, err := svc.Upload(ctx, templates.KindResume, "v1.docx", bytes.NewReader(docxBytes(t, "one")))
	if err != nil {
		t.Fatalf("upload v1: %v", err)
	}
	second, err := svc.Upload(ctx, templates.KindResume, "v2.docx", bytes.NewReader(docxBytes(t, "two")))
	if err != nil {
		t.Fatalf("upload v2: %v", err)
	}

	active, err := svc.FindActive(ctx, templates.KindResume)
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if active.ID != second.ID {
		t.Fatalf("expected v2 active, got %q (v1 was %q)", active.ID, first.ID)
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected single active template per kind, got %d", len(listed))
	}
}

func TestTemplatesRejectNonDocx(t *testing.T) {
	svc := templates.NewService(templates.NewMemoryRepo(), local.New(t.TempDir()))

	_, err := svc.Upload(context.Background(), templates.KindResume, "notes.txt", strings.NewReader("plain text"))
	if !errors.Is(err, templates.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTemplatesFindActiveMissing(t *testing.T) {
	svc := templates.NewService(templates.NewMemoryRepo(), local.New(t.TempDir()))

	_, err := svc.FindActive(context.Background(), templates.KindCoverLetter)
	if !errors.Is(err, templates.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTemplatesOpenActiveRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := templates.NewService(templates.NewMemoryRepo(), local.New(t.TempDir()))

	payload := docxBytes(t, "round trip")
	if _, err := svc.Upload(ctx, templates.KindCoverLetter, "letter.docx", bytes.NewReader(payload)); err != nil {
		t.Fatalf("upload: %v", err)
	}

	got, err := svc.OpenActive(ctx, templates.KindCoverLetter)
	if err != nil {
		t.Fatalf("open active: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("expected stored template bytes to round trip")
	}
}
