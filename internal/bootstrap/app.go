package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"jobsearch-backend/internal/artifacts"
	"jobsearch-backend/internal/contacts"
	"jobsearch-backend/internal/interviews"
	"jobsearch-backend/internal/jobs"
	"jobsearch-backend/internal/llm"
	openai "jobsearch-backend/internal/llm/openai"
	"jobsearch-backend/internal/profile"
	"jobsearch-backend/internal/samples"
	"jobsearch-backend/internal/shared/config"
	"jobsearch-backend/internal/shared/server"
	"jobsearch-backend/internal/shared/storage/db"
	"jobsearch-backend/internal/shared/storage/object"
	localstore "jobsearch-backend/internal/shared/storage/object/local"
	s3store "jobsearch-backend/internal/shared/storage/object/s3"
	"jobsearch-backend/internal/templates"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	LLM    llm.Client

	JobsService      *jobs.Service
	ContactsService  *contacts.Service
	ProfileService   *profile.Service
	SamplesService   *samples.Service
	TemplatesService *templates.Service
	ArtifactsService *artifacts.Service
	InterviewService *interviews.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    llmClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		JobsHandler:      jobs.NewHandler(app.JobsService),
		ContactsHandler:  contacts.NewHandler(app.ContactsService),
		ProfileHandler:   profile.NewHandler(app.ProfileService),
		SamplesHandler:   samples.NewHandler(app.SamplesService),
		TemplatesHandler: templates.NewHandler(app.TemplatesService),
		ArtifactsHandler: artifacts.NewHandler(app.ArtifactsService),
		InterviewHandler: interviews.NewHandler(app.InterviewService),
	})

	return app, nil
}

// buildDB connects Postgres when DATABASE_URL is set; otherwise records live
// in flat JSON files under DataDir.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using file-backed storage: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider != "openai" {
		return llm.PlaceholderClient{}, nil
	}
	apiKey := os.Getenv("OPENAI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: OPENAI_API_KEY not set; using placeholder llm client")
			return llm.PlaceholderClient{}, nil
		}
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	return openai.NewClient(apiKey, cfg.LLMModel)
}

func buildServices(app *App) {
	cfg := app.Config

	jobsRepo := jobs.NewFileRepo(recordPath(cfg, "jobs.json"))
	contactsRepo := contacts.NewFileRepo(recordPath(cfg, "contacts.json"))
	profileRepo := profile.NewFileRepo(recordPath(cfg, "profile.json"))
	samplesRepo := samples.NewFileRepo(recordPath(cfg, "samples.json"))
	templatesRepo := templates.NewFileRepo(recordPath(cfg, "templates.json"))

	var artifactsRepo artifacts.ArtifactsRepo
	var sessionsRepo interviews.SessionsRepo
	if app.DB != nil {
		artifactsRepo = &artifacts.PGRepo{DB: app.DB}
		sessionsRepo = &interviews.PGRepo{DB: app.DB}
	} else {
		artifactsRepo = artifacts.NewFileRepo(recordPath(cfg, "artifacts.json"))
		sessionsRepo = interviews.NewFileRepo(recordPath(cfg, "interviews.json"))
	}

	app.JobsService = jobs.NewService(jobsRepo)
	app.ContactsService = contacts.NewService(contactsRepo)
	app.ProfileService = profile.NewService(profileRepo)
	app.SamplesService = samples.NewService(samplesRepo, app.Store)
	app.TemplatesService = templates.NewService(templatesRepo, app.Store)

	app.ArtifactsService = &artifacts.Service{
		Repo:      artifactsRepo,
		Jobs:      app.JobsService,
		Profile:   app.ProfileService,
		Samples:   app.SamplesService,
		Templates: app.TemplatesService,
		LLM:       app.LLM,
		Store:     app.Store,
	}
	app.InterviewService = interviews.NewService(sessionsRepo, app.JobsService, app.ProfileService, app.LLM)
}

func recordPath(cfg config.Config, name string) string {
	dir := cfg.DataDir
	if strings.TrimSpace(dir) == "" {
		dir = "./data/records"
	}
	return filepath.Join(dir, name)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
