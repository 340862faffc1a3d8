package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-editor-backend/internal/auth"
	"resume-editor-backend/internal/documents"
	"resume-editor-backend/internal/drafts"
	"resume-editor-backend/internal/export"
	"resume-editor-backend/internal/grid"
	"resume-editor-backend/internal/review"
	"resume-editor-backend/internal/shared/config"
	"resume-editor-backend/internal/shared/metrics"
	"resume-editor-backend/internal/shared/server/middleware"
	"resume-editor-backend/internal/shared/server/respond"
	"resume-editor-backend/internal/users"
)

// RouterDeps carries the constructed handlers the router mounts.
type RouterDeps struct {
	Config config.Config

	Documents *documents.Handler
	Review    *review.Handler
	Drafts    *drafts.Handler
	Grid      *grid.Handler
	Export    *export.Handler
	Users     *users.Handler

	PasswordAuth *auth.PasswordService
	GoogleAuth   *auth.GoogleService
	GitHubAuth   *auth.GitHubService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"LLM":    {Rate: 0.2, Burst: 3},
			"EXPORT": {Rate: 0.5, Burst: 2},
		},
		GroupFor: rateLimitGroup,
	}))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.PasswordAuth != nil {
		deps.PasswordAuth.RegisterRoutes(api)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.GitHubAuth != nil {
		deps.GitHubAuth.RegisterRoutes(api)
	}
	if deps.Users != nil {
		deps.Users.RegisterRoutes(api)
	}
	if deps.Documents != nil {
		deps.Documents.RegisterRoutes(api)
	}
	if deps.Review != nil {
		deps.Review.RegisterRoutes(api)
	}
	if deps.Drafts != nil {
		deps.Drafts.RegisterRoutes(api)
	}
	if deps.Grid != nil {
		deps.Grid.RegisterRoutes(api)
	}
	if deps.Export != nil {
		deps.Export.RegisterRoutes(api)
	}

	return r
}

// rateLimitGroup throttles the model-backed and print-backed routes;
// everything else passes through.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	switch path := c.FullPath(); {
	case strings.HasSuffix(path, "/review"),
		strings.HasSuffix(path, "/drafts/structure"),
		strings.HasSuffix(path, "/drafts/score"):
		return "LLM"
	case strings.HasSuffix(path, "/export"),
		strings.HasSuffix(path, "/export/snapshot"):
		return "EXPORT"
	}
	return ""
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
