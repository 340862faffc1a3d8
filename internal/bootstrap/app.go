package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-editor-backend/internal/auth"
	"resume-editor-backend/internal/documents"
	"resume-editor-backend/internal/drafts"
	"resume-editor-backend/internal/export"
	"resume-editor-backend/internal/grid"
	"resume-editor-backend/internal/llm"
	"resume-editor-backend/internal/llm/gemini"
	"resume-editor-backend/internal/llm/openai"
	"resume-editor-backend/internal/review"
	"resume-editor-backend/internal/shared/config"
	"resume-editor-backend/internal/shared/server"
	"resume-editor-backend/internal/shared/storage/db"
	"resume-editor-backend/internal/shared/storage/object"
	localstore "resume-editor-backend/internal/shared/storage/object/local"
	s3store "resume-editor-backend/internal/shared/storage/object/s3"
	"resume-editor-backend/internal/users"
)

var errMissingDatabaseURL = errors.New("DATABASE_URL is required")

// App holds shared dependencies and the assembled router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	LLM    llm.Client

	DocumentsRepo documents.DocumentsRepo
	ReviewsRepo   review.ReviewsRepo
	DraftsRepo    drafts.DraftsRepo
	UsersRepo     users.Repo

	DocumentsService *documents.Service
	ReviewService    *review.Service
	DraftsService    *drafts.Service
	ExportService    *export.Service
	UsersService     *users.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
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

	llmClient, err := buildLLM(ctx, cfg)
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
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errMissingDatabaseURL
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
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

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		if apiKey == "" {
			log.Printf("bootstrap: OPENAI_API_KEY empty; LLM features disabled")
			return llm.PlaceholderClient{}, nil
		}
		return openai.NewClient(apiKey, cfg.LLMModel)
	case "gemini":
		apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		if apiKey == "" {
			log.Printf("bootstrap: GEMINI_API_KEY empty; LLM features disabled")
			return llm.PlaceholderClient{}, nil
		}
		return gemini.NewClient(ctx, apiKey, cfg.LLMModel)
	default:
		log.Printf("bootstrap: unknown LLM provider %q; LLM features disabled", cfg.LLMProvider)
		return llm.PlaceholderClient{}, nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var (
		docRepo    documents.DocumentsRepo
		reviewRepo review.ReviewsRepo
		draftRepo  drafts.DraftsRepo
		userRepo   users.Repo
	)
	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		reviewRepo = &review.PGRepo{DB: app.DB}
		draftRepo = &drafts.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		reviewRepo = review.NewMemoryRepo()
		draftRepo = drafts.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	docSvc := &documents.Service{Store: app.Store, Repo: docRepo}
	reviewSvc := review.NewService(reviewRepo, docRepo, app.Store, app.LLM)
	draftSvc := drafts.NewService(draftRepo, app.LLM)
	exportSvc := export.NewService(draftRepo, export.ChromePrinter{})
	userSvc := users.NewService(userRepo)

	cfg := app.Config
	googleAuth := auth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		userSvc,
	)
	githubAuth := auth.NewGitHubService(
		cfg.GitHubClientID,
		cfg.GitHubClientSecret,
		cfg.GitHubRedirectURL,
		cfg.UIRedirectURL,
		userSvc,
	)

	app.DocumentsRepo = docRepo
	app.ReviewsRepo = reviewRepo
	app.DraftsRepo = draftRepo
	app.UsersRepo = userRepo
	app.DocumentsService = docSvc
	app.ReviewService = reviewSvc
	app.DraftsService = draftSvc
	app.ExportService = exportSvc
	app.UsersService = userSvc

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       cfg,
		Documents:    documents.NewHandler(docSvc),
		Review:       review.NewHandler(reviewSvc),
		Drafts:       drafts.NewHandler(draftSvc),
		Grid:         grid.NewHandler(grid.NewLayoutStore()),
		Export:       export.NewHandler(exportSvc),
		Users:        users.NewHandler(userSvc),
		PasswordAuth: auth.NewPasswordService(userRepo),
		GoogleAuth:   googleAuth,
		GitHubAuth:   githubAuth,
	})
}
