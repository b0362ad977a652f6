package interviews

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsearch-backend/internal/genai"
	"jobsearch-backend/internal/llm"
	"jobsearch-backend/internal/shared/server/respond"
	"jobsearch-backend/internal/shared/telemetry"
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

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/:id/interviews", h.start)
	rg.GET("/interviews", h.list)
	rg.GET("/interviews/:id", h.get)
	rg.POST("/interviews/:id/messages", h.respond)
	rg.POST("/interviews/:id/end", h.end)
}

func (h *Handler) start(c *gin.Context) {
	session, err := h.Svc.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondSessionError(c, err, "failed to start interview")
		return
	}
	respond.JSON(c, http.StatusCreated, session)
}

func (h *Handler) respond(c *gin.Context) {
	var req struct {
		Answer string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Svc.Respond(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		h.respondSessionError(c, err, "failed to record answer")
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) end(c *gin.Context) {
	session, err := h.Svc.End(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondSessionError(c, err, "failed to end interview")
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) respondSessionError(c *gin.Context, err error, fallback string) {
	var extErr *genai.ExtractionError
	switch {
	case errors.Is(err, ErrJobNotFound):
		respond.Error(c, http.StatusNotFound, "reference_not_found", "job not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "interview session not found", nil)
	case errors.Is(err, ErrEmptyAnswer):
		respond.Error(c, http.StatusBadRequest, "validation_error", "answer must not be empty", nil)
	case errors.Is(err, ErrSessionComplete):
		respond.Error(c, http.StatusConflict, "session_complete", "interview session already complete", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.As(err, &extErr):
		telemetry.Error("interviews.extraction_failed", map[string]any{
			"error": extErr.Err.Error(),
			"raw":   extErr.Raw,
		})
		respond.Error(c, http.StatusBadGateway, "invalid_llm_output", "model response was not valid JSON", gin.H{
			"raw": truncate(extErr.Raw, maxRawDetail),
		})
	case errors.Is(err, llm.ErrUnavailable):
		respond.Error(c, http.StatusBadGateway, "upstream_unavailable", "language model request failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), c.Query("jobId"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list interviews", nil)
		return
	}
	respond.JSON(c, http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	session, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "interview session not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch interview", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
