package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func buildTemplate(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">` + p + `</w:t></w:r></w:p>`)
	}
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="` + wmlNamespace + `"><w:body>` + body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	other, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("create styles entry: %v", err)
	}
	if _, err := other.Write([]byte(`<w:styles xmlns:w="` + wmlNamespace + `"/>`)); err != nil {
		t.Fatalf("write styles entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func documentXML(t *testing.T, docxBytes []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		t.Fatalf("open rendered docx: %v", err)
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("open document.xml: %v", err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("read document.xml: %v", err)
			}
			return string(data)
		}
	}
	t.Fatal("document.xml not found in rendered archive")
	return ""
}

func TestRenderSubstitutesAndRepairs(t *testing.T) {
	template := buildTemplate(t,
		"{{NAME}} — {{TITLE}}",
		"{{EXP4_TITLE}} — {{EXP4_COMPANY}}",
		"Experience",
	)

	slots := emptySlots(ResumeSlots())
	slots["NAME"] = "Jordan Lee"
	slots["TITLE"] = "Backend Engineer"

	rendered, err := Render(template, slots)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	xmlText := documentXML(t, rendered)
	if !strings.Contains(xmlText, "Jordan Lee — Backend Engineer") {
		t.Fatalf("expected substituted header line, got:\n%s", xmlText)
	}
	// The all-empty experience line degenerated to a bare dash and is gone,
	// so the only dash left is the one inside the header line.
	if strings.Count(xmlText, "—") != 1 {
		t.Fatalf("expected separator-only line removed, got:\n%s", xmlText)
	}
	if strings.Contains(xmlText, "{{") {
		t.Fatalf("expected no remaining tokens, got:\n%s", xmlText)
	}
	if !strings.Contains(xmlText, "Experience") {
		t.Fatal("expected static paragraph preserved")
	}
}

func TestRenderFailsOnUnknownToken(t *testing.T) {
	template := buildTemplate(t, "{{NOT_A_SLOT}}")

	_, err := Render(template, emptySlots(ResumeSlots()))
	if err == nil {
		t.Fatal("expected error for unresolved token")
	}
	if !strings.Contains(err.Error(), "NOT_A_SLOT") {
		t.Fatalf("expected token named in error, got: %v", err)
	}
}

func TestRenderPreservesOtherArchiveEntries(t *testing.T) {
	template := buildTemplate(t, "{{NAME}}")

	slots := emptySlots(ResumeSlots())
	slots["NAME"] = "Jordan Lee"

	rendered, err := Render(template, slots)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(rendered), int64(len(rendered)))
	if err != nil {
		t.Fatalf("open rendered docx: %v", err)
	}
	found := false
	for _, f := range zr.File {
		if f.Name == "word/styles.xml" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected styles.xml carried through")
	}
}

func TestRenderRejectsNonZip(t *testing.T) {
	if _, err := Render([]byte("not a zip archive"), emptySlots(ResumeSlots())); err == nil {
		t.Fatal("expected error for invalid template bytes")
	}
}
