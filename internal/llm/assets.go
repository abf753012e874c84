package llm

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/sevigo/review-generator/internal/core"
)

const (
	modelConfigFile = "config.json"
	tokenizerFile   = "tokenizer.json"

	defaultGenerationLength = 50
)

// tokenizerLoader is swapped in tests that have no real vocabulary file.
var tokenizerLoader = LoadTokenizer

// ModelAssets is the read-only pretrained model metadata loaded once at startup.
type ModelAssets struct {
	Path      string
	ModelType string
	// ContextWindow is the number of positions the model attends to; 0 if unknown.
	ContextWindow int
	// DefaultMaxLength is the generation length suggested by the model config.
	DefaultMaxLength int
	Tokenizer        Tokenizer
}

// LoadModelAssets reads the model configuration and tokenizer vocabulary from dir.
// Every failure wraps core.ErrModelLoad.
func LoadModelAssets(dir string, logger *slog.Logger) (*ModelAssets, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: model directory %s: %w", core.ErrModelLoad, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: model path %s is not a directory", core.ErrModelLoad, dir)
	}

	assets, err := readModelConfig(filepath.Join(dir, modelConfigFile))
	if err != nil {
		return nil, err
	}
	assets.Path = dir

	tokenizerPath := filepath.Join(dir, tokenizerFile)
	if _, err := os.Stat(tokenizerPath); err != nil {
		return nil, fmt.Errorf("%w: tokenizer vocabulary: %w", core.ErrModelLoad, err)
	}
	tk, err := tokenizerLoader(tokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrModelLoad, err)
	}
	assets.Tokenizer = tk

	logger.Info("model assets loaded",
		"path", dir,
		"model_type", assets.ModelType,
		"context_window", assets.ContextWindow,
		"default_max_length", assets.DefaultMaxLength,
	)
	return assets, nil
}

func readModelConfig(path string) (*ModelAssets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: model config: %w", core.ErrModelLoad, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: model config %s is not valid JSON", core.ErrModelLoad, path)
	}

	modelType := gjson.GetBytes(data, "model_type").String()
	if modelType == "" {
		return nil, fmt.Errorf("%w: model config %s has no model_type", core.ErrModelLoad, path)
	}

	var window int64
	for _, key := range []string{"n_positions", "n_ctx", "max_position_embeddings"} {
		if v := gjson.GetBytes(data, key); v.Exists() && v.Int() > 0 {
			window = v.Int()
			break
		}
	}

	maxLength := int(gjson.GetBytes(data, "task_specific_params.text-generation.max_length").Int())
	if maxLength < core.MinMaxLength || maxLength > core.MaxMaxLength {
		maxLength = defaultGenerationLength
	}

	return &ModelAssets{
		ModelType:        modelType,
		ContextWindow:    int(window),
		DefaultMaxLength: maxLength,
	}, nil
}
