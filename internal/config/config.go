// Package config loads generation settings from YAML files. Credentials can
// come from the file or be overlaid from environment variables by the CLI;
// either way they travel in an explicit Config value, never in globals.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/pennz1/poe-workflow/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// maxConfigSize bounds YAML input to prevent memory exhaustion.
const maxConfigSize = 1 << 20

// Field length limits.
const (
	MaxCustomerNameLength = 100
	MaxBudgetLength       = 50
	MaxPathLength         = 2048
	MaxEndpointLength     = 2048
	MaxDeploymentLength   = 100
)

// Config holds all configuration for document generation.
type Config struct {
	Azure      AzureConfig      `yaml:"azure"`
	Templates  TemplatesConfig  `yaml:"templates"`
	Output     OutputConfig     `yaml:"output"`
	Generation GenerationConfig `yaml:"generation"`
	Document   DocumentConfig   `yaml:"document"`
}

// AzureConfig identifies the Azure OpenAI deployment.
type AzureConfig struct {
	Key        string `yaml:"key"`        // API key; prefer the env var over the file
	Endpoint   string `yaml:"endpoint"`   // https://<resource>.openai.azure.com/
	Deployment string `yaml:"deployment"` // deployment name
	APIVersion string `yaml:"apiVersion"` // empty = client default
}

// TemplatesConfig points at the .docx templates. Missing files fall back to
// blank documents, matching the generator's behavior.
type TemplatesConfig struct {
	Solution string `yaml:"solution"` // solution-architecture template path
	POV      string `yaml:"pov"`      // POV deployment plan template path
}

// OutputConfig defines where generated files land.
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty = current directory
}

// GenerationConfig tunes the chat-completions calls.
type GenerationConfig struct {
	Temperature float32 `yaml:"temperature"` // 0 = client default
	MaxTokens   int     `yaml:"maxTokens"`   // 0 = client default
	Timeout     string  `yaml:"timeout"`     // Go duration, e.g. "2m"; "" = default
}

// DocumentConfig tunes body rendering.
type DocumentConfig struct {
	Font            string  `yaml:"font"`            // body font, default 微软雅黑
	BodySizePt      float64 `yaml:"bodySizePt"`      // default 9
	FirstLineIndent bool    `yaml:"firstLineIndent"` // indent plain paragraphs
}

// DefaultConfig returns a neutral configuration. Credentials are left empty
// on purpose; they must come from the file or the environment.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and value ranges.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"azure.endpoint", c.Azure.Endpoint, MaxEndpointLength},
		{"azure.deployment", c.Azure.Deployment, MaxDeploymentLength},
		{"templates.solution", c.Templates.Solution, MaxPathLength},
		{"templates.pov", c.Templates.POV, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
	}
	for _, f := range fields {
		if len(f.value) > f.max {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, f.name, len(f.value), f.max)
		}
	}

	if t := c.Generation.Temperature; t < 0 || t > 2 {
		return fmt.Errorf("%w: generation.temperature must be between 0 and 2, got %.2f", ErrInvalidValue, t)
	}
	if c.Generation.MaxTokens < 0 {
		return fmt.Errorf("%w: generation.maxTokens must not be negative", ErrInvalidValue)
	}
	if c.Generation.Timeout != "" {
		d, err := time.ParseDuration(c.Generation.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: generation.timeout %q is not a positive duration", ErrInvalidValue, c.Generation.Timeout)
		}
	}
	if c.Document.BodySizePt < 0 {
		return fmt.Errorf("%w: document.bodySizePt must not be negative", ErrInvalidValue)
	}
	return nil
}

// GenerationTimeout returns the parsed timeout, or zero when unset.
// Validate must have accepted the config first.
func (c *Config) GenerationTimeout() time.Duration {
	if c.Generation.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Generation.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// LoadConfig loads configuration from a file path or config name. Names are
// searched in the current directory and the user config directory. Unknown
// YAML fields are rejected to catch typos early.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigParse, configPath, maxConfigSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Extensions tried in order: .yaml, .yml
// Locations tried in order: current directory, ~/.config/poegen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "poegen", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
