package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	googleauth "careerai-backend/internal/auth"
	"careerai-backend/internal/coverletters"
	"careerai-backend/internal/landing"
	"careerai-backend/internal/llm"
	"careerai-backend/internal/llm/gemini"
	"careerai-backend/internal/llm/openai"
	"careerai-backend/internal/queue"
	"careerai-backend/internal/services/health"
	sharedauth "careerai-backend/internal/shared/auth"
	"careerai-backend/internal/shared/config"
	"careerai-backend/internal/shared/server"
	"careerai-backend/internal/shared/storage/db"
	"careerai-backend/internal/shared/telemetry"
	"careerai-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	Redis              *redis.Client
	Events             queue.Client
	LLM                llm.Client
	Signer             *sharedauth.Signer
	UsersRepo          users.Repo
	CoverLettersRepo   coverletters.Repo
	UsersService       *users.Service
	CoverLetterService *coverletters.Service
	UsersHandler       *users.Handler
	CoverLetterHandler *coverletters.Handler
	LandingHandler     *landing.Handler
	GoogleAuth         *googleauth.GoogleService
	Health             *health.Service

	closers []func() error
}

// Option overrides a dependency, mostly for tests.
type Option func(*App)

// WithLLM replaces the generation client built from config.
func WithLLM(client llm.Client) Option {
	return func(a *App) { a.LLM = client }
}

// WithEvents replaces the event client built from config.
func WithEvents(client queue.Client) Option {
	return func(a *App) { a.Events = client }
}

// Build validates cfg and wires every dependency and the router.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	app := &App{Config: cfg}
	for _, opt := range opts {
		opt(app)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.DB = sqlDB
	if sqlDB != nil {
		app.closers = append(app.closers, sqlDB.Close)
	}

	if err := buildRedis(app); err != nil {
		app.Close()
		return nil, err
	}
	if app.LLM == nil {
		client, err := buildLLM(ctx, cfg)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.LLM = client
	}

	buildServices(app)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		Verifier:           app.Signer,
		Health:             app.Health,
		LandingHandler:     app.LandingHandler,
		UserHandler:        app.UsersHandler,
		CoverLetterHandler: app.CoverLetterHandler,
		GoogleAuth:         app.GoogleAuth,
	})
	return app, nil
}

// Close releases connections opened by Build.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db.memory", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db.memory", map[string]any{"reason": "connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildRedis(app *App) error {
	if strings.TrimSpace(app.Config.RedisURL) == "" {
		if app.Events == nil {
			app.Events = queue.NoopClient{}
		}
		return nil
	}
	opt, err := redis.ParseURL(app.Config.RedisURL)
	if err != nil {
		return fmt.Errorf("parse REDIS_URL: %w", err)
	}
	app.Redis = redis.NewClient(opt)
	app.closers = append(app.closers, app.Redis.Close)

	if app.Events == nil {
		client, err := queue.NewAsynqClient(app.Config.RedisURL)
		if err != nil {
			return err
		}
		app.Events = client
		app.closers = append(app.closers, client.Close)
	}
	return nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	case config.ProviderOpenAI:
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	default:
		telemetry.Warn("bootstrap.llm.placeholder", map[string]any{"provider": cfg.LLMProvider})
		return llm.PlaceholderClient{}, nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.CoverLettersRepo = &coverletters.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.CoverLettersRepo = coverletters.NewMemoryRepo()
	}

	app.Signer = sharedauth.NewSigner(app.Config.JWTSecret, app.Config.TokenTTL)
	app.UsersService = users.NewService(app.UsersRepo)
	app.CoverLetterService = coverletters.NewService(app.CoverLettersRepo, app.UsersService, app.LLM, app.Events)

	checks := map[string]health.Pinger{}
	if app.DB != nil {
		checks["database"] = app.DB
	}
	if app.Redis != nil {
		checks["redis"] = health.PingFunc(func(ctx context.Context) error {
			return app.Redis.Ping(ctx).Err()
		})
	}
	app.Health = health.NewService(checks)

	app.UsersHandler = users.NewHandler(app.UsersService)
	app.CoverLetterHandler = coverletters.NewHandler(app.CoverLetterService)
	app.LandingHandler = landing.NewHandler()
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
		app.Signer,
	)
}
