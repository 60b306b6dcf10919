package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

// Config holds application configuration.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	CORSAllowOrigin []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	Env             string        `env:"ENV" envDefault:"dev"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	RedisURL        string        `env:"REDIS_URL"`
	LLMProvider     string        `env:"LLM_PROVIDER" envDefault:"gemini"`
	LLMModel        string        `env:"LLM_MODEL"`
	LLMTimeout      time.Duration `env:"LLM_TIMEOUT" envDefault:"120s"`
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	JWTSecret       string        `env:"JWT_SECRET"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`
	UIRedirectURL      string `env:"UI_REDIRECT_URL"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	if err := loadEnvFiles(".env", "cmd/.env"); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.LLMProvider = normalizeProvider(cfg.LLMProvider)
	cfg.CORSAllowOrigin = trimAll(cfg.CORSAllowOrigin)
	if strings.TrimSpace(cfg.LLMModel) == "" {
		cfg.LLMModel = defaultModel(cfg.LLMProvider)
	}
	return cfg, nil
}

// Validate reports missing settings up front so a misconfigured process
// fails at startup instead of on the first generation request.
func (c Config) Validate() error {
	var errs []error
	switch c.LLMProvider {
	case ProviderGemini:
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required when LLM_PROVIDER=gemini"))
		}
	case ProviderOpenAI:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required when LLM_PROVIDER=openai"))
		}
	case ProviderNone:
		if !c.IsDevLike() {
			errs = append(errs, errors.New("LLM_PROVIDER=none is only allowed in dev"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider))
	}
	if c.LLMTimeout <= 0 {
		errs = append(errs, errors.New("LLM_TIMEOUT must be positive"))
	}
	if c.Env == "production" {
		if strings.TrimSpace(c.DatabaseURL) == "" {
			errs = append(errs, errors.New("DATABASE_URL is required in production"))
		}
		if strings.TrimSpace(c.JWTSecret) == "" {
			errs = append(errs, errors.New("JWT_SECRET is required in production"))
		}
	}
	return errors.Join(errs...)
}

// IsDevLike reports whether in-memory fallbacks are acceptable.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch p := strings.ToLower(strings.TrimSpace(raw)); p {
	case "", ProviderGemini:
		return ProviderGemini
	default:
		return p
	}
}

func defaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	default:
		return "gemini-2.5-flash"
	}
}
