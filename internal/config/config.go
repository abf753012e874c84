package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/review-generator/internal/logger"
)

const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

// Config holds the application's configuration values.
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Logging logger.Config

	// FormContentPath optionally points at a YAML file overriding the page copy.
	FormContentPath string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// AIConfig holds the settings of the text-generation pipeline.
type AIConfig struct {
	LLMProvider       string
	OllamaHost        string
	GeneratorModel    string
	GeminiAPIKey      string
	ModelPath         string
	GenerationTimeout time.Duration
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates the result. It uses the Viper
// library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("MODEL_PATH", "./gpt2")
	v.SetDefault("LLM_PROVIDER", ProviderOllama)
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("GENERATOR_MODEL_NAME", "gemma3:latest")
	v.SetDefault("GENERATION_TIMEOUT", "60s")
	v.SetDefault("FORM_CONTENT_PATH", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	provider := strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER")))

	// Special handling for Gemini generator model name.
	generatorModel := v.GetString("GENERATOR_MODEL_NAME")
	if provider == ProviderGemini {
		if geminiModel := v.GetString("GEMINI_GENERATOR_MODEL_NAME"); geminiModel != "" {
			generatorModel = geminiModel
		} else {
			generatorModel = "gemini-2.5-flash"
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
		},
		AI: AIConfig{
			LLMProvider:       provider,
			OllamaHost:        v.GetString("OLLAMA_HOST"),
			GeneratorModel:    generatorModel,
			GeminiAPIKey:      v.GetString("GEMINI_API_KEY"),
			ModelPath:         v.GetString("MODEL_PATH"),
			GenerationTimeout: v.GetDuration("GENERATION_TIMEOUT"),
		},
		Logging: logger.Config{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
			Output: strings.ToLower(v.GetString("LOG_OUTPUT")),
		},
		FormContentPath: v.GetString("FORM_CONTENT_PATH"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("SERVER_PORT must be set")
	}
	return c.AI.Validate()
}

// Validate checks the text-generation settings.
func (c *AIConfig) Validate() error {
	switch c.LLMProvider {
	case ProviderOllama:
		if strings.TrimSpace(c.OllamaHost) == "" {
			return fmt.Errorf("OLLAMA_HOST must be set for the ollama provider")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is not set in environment for gemini provider")
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %q", c.LLMProvider)
	}
	if strings.TrimSpace(c.GeneratorModel) == "" {
		return fmt.Errorf("generator model name must be set")
	}
	if strings.TrimSpace(c.ModelPath) == "" {
		return fmt.Errorf("MODEL_PATH must be set")
	}
	if c.GenerationTimeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be positive, got %s", c.GenerationTimeout)
	}
	return nil
}
