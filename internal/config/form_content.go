package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/review-generator/internal/core"
)

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParsing  = errors.New("config parsing failed")
)

// LoadFormContent reads the page copy from a YAML file. Fields missing from the
// file keep their defaults. An empty path returns the defaults.
func LoadFormContent(path string) (*core.FormContent, error) {
	content := core.DefaultFormContent()
	if strings.TrimSpace(path) == "" {
		return content, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return content, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read form content %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, content); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}
	return content, nil
}
