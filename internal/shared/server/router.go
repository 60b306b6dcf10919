package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "careerai-backend/internal/auth"
	"careerai-backend/internal/coverletters"
	"careerai-backend/internal/landing"
	"careerai-backend/internal/services/health"
	"careerai-backend/internal/shared/config"
	"careerai-backend/internal/shared/metrics"
	"careerai-backend/internal/shared/server/middleware"
	"careerai-backend/internal/shared/server/respond"
	"careerai-backend/internal/users"
)

// RouterDeps holds the handlers mounted on the engine.
type RouterDeps struct {
	Config             config.Config
	Verifier           middleware.TokenVerifier
	Health             *health.Service
	LandingHandler     *landing.Handler
	UserHandler        *users.Handler
	CoverLetterHandler *coverletters.Handler
	GoogleAuth         *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Metrics(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	if deps.LandingHandler != nil {
		deps.LandingHandler.RegisterRoutes(r)
	}
	r.GET("/healthz", func(c *gin.Context) {
		if deps.Health == nil {
			respond.OK(c, gin.H{"ok": true})
			return
		}
		report := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api/v1")
	api.Use(middleware.Auth(deps.Verifier))
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.CoverLetterHandler != nil {
		deps.CoverLetterHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

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
