package samples_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobsearch-backend/internal/samples"
	"jobsearch-backend/internal/shared/storage/object/local"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := samples.NewService(samples.NewMemoryRepo(), local.New(t.TempDir()))
	samples.NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestSamplesCreateTextAndList(t *testing.T) {
	router := newRouter(t)

	payload := `{"title":"Old cover letter","type":"cover_letter","content":"Dear team, I write clearly."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/samples", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/samples", nil)
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}

	var listed []samples.Sample
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].Content != "Dear team, I write clearly." {
		t.Fatalf("unexpected samples: %+v", listed)
	}
}

func TestSamplesUploadDocxExtractsText(t *testing.T) {
	router := newRouter(t)

	var docBuf bytes.Buffer
	zw := zip.NewWriter(&docBuf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t>Sample prose from a document.</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", "sample.docx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(docBuf.Bytes()); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.WriteField("title", "Past writing"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/samples", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created samples.Sample
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Content != "Sample prose from a document." {
		t.Fatalf("unexpected extracted content: %q", created.Content)
	}
	if created.FileKey == "" {
		t.Fatal("expected stored file key")
	}
}

func TestSamplesPromptTextCaps(t *testing.T) {
	items := []samples.Sample{
		{Title: "One", Content: strings.Repeat("a", 30)},
		{Title: "Two", Content: strings.Repeat("b", 30)},
		{Title: "Three", Content: strings.Repeat("c", 30)},
	}
	text := samples.PromptText(items, 2, 50)
	if strings.Contains(text, "Three") {
		t.Fatal("expected sample cap to drop the third sample")
	}
	if len([]rune(text)) > 50 {
		t.Fatalf("expected rune cap, got %d runes", len([]rune(text)))
	}
}
