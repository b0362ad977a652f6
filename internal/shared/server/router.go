package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsearch-backend/internal/artifacts"
	"jobsearch-backend/internal/contacts"
	"jobsearch-backend/internal/interviews"
	"jobsearch-backend/internal/jobs"
	"jobsearch-backend/internal/profile"
	"jobsearch-backend/internal/samples"
	"jobsearch-backend/internal/shared/config"
	"jobsearch-backend/internal/shared/metrics"
	"jobsearch-backend/internal/shared/server/middleware"
	"jobsearch-backend/internal/shared/server/respond"
	"jobsearch-backend/internal/templates"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config           config.Config
	JobsHandler      *jobs.Handler
	ContactsHandler  *contacts.Handler
	ProfileHandler   *profile.Handler
	SamplesHandler   *samples.Handler
	TemplatesHandler *templates.Handler
	ArtifactsHandler *artifacts.Handler
	InterviewHandler *interviews.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	deps.JobsHandler.RegisterRoutes(api)
	deps.ContactsHandler.RegisterRoutes(api)
	deps.ProfileHandler.RegisterRoutes(api)
	deps.SamplesHandler.RegisterRoutes(api)
	deps.TemplatesHandler.RegisterRoutes(api)
	deps.ArtifactsHandler.RegisterRoutes(api)
	deps.InterviewHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
