package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("CORS_ALLOW_ORIGINS", " http://a.test , ,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLMModel)
	assert.Equal(t, 120*time.Second, cfg.LLMTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigin)
}

func TestLoadOpenAIDefaultModel(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("LLM_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "gemini with key",
			cfg:  Config{Env: "dev", LLMProvider: ProviderGemini, GeminiAPIKey: "k", LLMTimeout: time.Second},
		},
		{
			name:    "gemini without key",
			cfg:     Config{Env: "dev", LLMProvider: ProviderGemini, LLMTimeout: time.Second},
			wantErr: "GEMINI_API_KEY is required",
		},
		{
			name:    "openai without key",
			cfg:     Config{Env: "dev", LLMProvider: ProviderOpenAI, GeminiAPIKey: "k", LLMTimeout: time.Second},
			wantErr: "OPENAI_API_KEY is required",
		},
		{
			name: "none in dev",
			cfg:  Config{Env: "dev", LLMProvider: ProviderNone, LLMTimeout: time.Second},
		},
		{
			name:    "none in production",
			cfg:     Config{Env: "production", LLMProvider: ProviderNone, DatabaseURL: "x", JWTSecret: "s", LLMTimeout: time.Second},
			wantErr: "only allowed in dev",
		},
		{
			name:    "production needs database and secret",
			cfg:     Config{Env: "production", LLMProvider: ProviderGemini, GeminiAPIKey: "k", LLMTimeout: time.Second},
			wantErr: "DATABASE_URL is required in production",
		},
		{
			name:    "unknown provider",
			cfg:     Config{Env: "dev", LLMProvider: "bard", LLMTimeout: time.Second},
			wantErr: `unknown LLM_PROVIDER "bard"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadEnvFilesDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nexport CAREERAI_TEST_A=\"from-file\"\nCAREERAI_TEST_B=file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CAREERAI_TEST_B", "from-env")
	os.Unsetenv("CAREERAI_TEST_A")
	t.Cleanup(func() { os.Unsetenv("CAREERAI_TEST_A") })

	require.NoError(t, loadEnvFiles(path, filepath.Join(dir, "missing.env")))

	assert.Equal(t, "from-file", os.Getenv("CAREERAI_TEST_A"))
	assert.Equal(t, "from-env", os.Getenv("CAREERAI_TEST_B"))
}

func TestLoadEnvFilesReportsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CAREERAI_TEST_C='unterminated\n"), 0o600))

	err := loadEnvFiles(path)
	require.Error(t, err)
}
