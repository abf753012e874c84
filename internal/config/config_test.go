package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ProviderOllama, cfg.AI.LLMProvider)
	assert.Equal(t, "http://localhost:11434", cfg.AI.OllamaHost)
	assert.Equal(t, "gemma3:latest", cfg.AI.GeneratorModel)
	assert.Equal(t, "./gpt2", cfg.AI.ModelPath)
	assert.Equal(t, 60*time.Second, cfg.AI.GenerationTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.FormContentPath)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("MODEL_PATH", "/models/gpt2")
	t.Setenv("GENERATION_TIMEOUT", "2m")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, ProviderGemini, cfg.AI.LLMProvider)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.GeneratorModel)
	assert.Equal(t, "/models/gpt2", cfg.AI.ModelPath)
	assert.Equal(t, 2*time.Minute, cfg.AI.GenerationTimeout)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=7070\nMODEL_PATH=./models/gpt2\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "./models/gpt2", cfg.AI.ModelPath)
}

func TestLoadConfig_InvalidProvider(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LLM_PROVIDER", "transformers")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unsupported LLM provider")
}

func TestAIConfig_Validate(t *testing.T) {
	valid := AIConfig{
		LLMProvider:       ProviderOllama,
		OllamaHost:        "http://localhost:11434",
		GeneratorModel:    "gemma3:latest",
		ModelPath:         "./gpt2",
		GenerationTimeout: time.Minute,
	}

	tests := []struct {
		name    string
		mutate  func(c *AIConfig)
		wantErr bool
	}{
		{name: "Valid ollama config", mutate: func(*AIConfig) {}},
		{
			name: "Valid gemini config",
			mutate: func(c *AIConfig) {
				c.LLMProvider = ProviderGemini
				c.GeminiAPIKey = "key"
			},
		},
		{
			name:    "Gemini without key",
			mutate:  func(c *AIConfig) { c.LLMProvider = ProviderGemini },
			wantErr: true,
		},
		{
			name:    "Unknown provider",
			mutate:  func(c *AIConfig) { c.LLMProvider = "openai" },
			wantErr: true,
		},
		{
			name:    "Empty ollama host",
			mutate:  func(c *AIConfig) { c.OllamaHost = " " },
			wantErr: true,
		},
		{
			name:    "Empty model path",
			mutate:  func(c *AIConfig) { c.ModelPath = "" },
			wantErr: true,
		},
		{
			name:    "Empty generator model",
			mutate:  func(c *AIConfig) { c.GeneratorModel = "" },
			wantErr: true,
		},
		{
			name:    "Zero timeout",
			mutate:  func(c *AIConfig) { c.GenerationTimeout = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("AIConfig.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
