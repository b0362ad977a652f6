package artifacts

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsearch-backend/internal/genai"
	"jobsearch-backend/internal/llm"
	"jobsearch-backend/internal/shared/server/respond"
	"jobsearch-backend/internal/shared/telemetry"
	"jobsearch-backend/internal/shared/util"
)

const maxRawDetail = 2000

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches artifact routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/:id/resume", h.generateResume)
	rg.POST("/jobs/:id/cover-letter", h.generateCoverLetter)
	rg.GET("/artifacts", h.list)
	rg.GET("/artifacts/:id", h.get)
	rg.GET("/artifacts/:id/download", h.download)
}

func (h *Handler) generateResume(c *gin.Context) {
	h.generate(c, KindResume)
}

func (h *Handler) generateCoverLetter(c *gin.Context) {
	h.generate(c, KindCoverLetter)
}

func (h *Handler) generate(c *gin.Context, kind string) {
	artifact, err := h.Svc.Generate(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		h.respondGenerateError(c, kind, err)
		return
	}
	respond.JSON(c, http.StatusOK, artifact)
}

func (h *Handler) respondGenerateError(c *gin.Context, kind string, err error) {
	var extErr *genai.ExtractionError
	switch {
	case errors.Is(err, ErrJobNotFound):
		respond.Error(c, http.StatusNotFound, "reference_not_found", "job not found", nil)
	case errors.Is(err, ErrProfileNotSet):
		respond.Error(c, http.StatusBadRequest, "validation_error", "profile must be saved before generating", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.As(err, &extErr):
		telemetry.Error("artifacts.extraction_failed", map[string]any{
			"kind":  kind,
			"error": extErr.Err.Error(),
			"raw":   extErr.Raw,
		})
		respond.Error(c, http.StatusBadGateway, "invalid_llm_output", "model response was not valid JSON", gin.H{
			"raw": truncate(extErr.Raw, maxRawDetail),
		})
	case errors.Is(err, llm.ErrUnavailable):
		respond.Error(c, http.StatusBadGateway, "upstream_unavailable", "language model request failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate artifact", nil)
	}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), c.Query("jobId"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list artifacts", nil)
		return
	}
	respond.JSON(c, http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	artifact, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "artifact not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch artifact", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, artifact)
}

func (h *Handler) download(c *gin.Context) {
	artifact, body, err := h.Svc.OpenDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "artifact not found", nil)
		case errors.Is(err, ErrNoDocument):
			respond.Error(c, http.StatusNotFound, "not_found", "artifact has no rendered document", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open document", nil)
		}
		return
	}
	defer body.Close()

	fileName := downloadFileName(artifact)
	c.Header("Content-Type", docxMimeType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		telemetry.Error("artifacts.download_copy_failed", map[string]any{
			"artifact_id": artifact.ID,
			"error":       err.Error(),
		})
	}
}

func downloadFileName(artifact Artifact) string {
	base := artifact.Company + "_" + artifact.Kind
	if sanitized, err := util.SanitizeFileName(base + ".docx"); err == nil {
		return sanitized
	}
	return artifact.Kind + ".docx"
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
