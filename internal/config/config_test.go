package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "poegen.yaml", `
azure:
  endpoint: https://example.openai.azure.com/
  deployment: gpt-4o
  apiVersion: "2024-06-01"
templates:
  solution: templates/solution.docx
  pov: templates/pov.docx
output:
  dir: out
generation:
  temperature: 0.7
  maxTokens: 16384
  timeout: 2m
document:
  font: 微软雅黑
  bodySizePt: 9
  firstLineIndent: true
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Azure.Deployment != "gpt-4o" {
			t.Errorf("Deployment = %q, want gpt-4o", cfg.Azure.Deployment)
		}
		if cfg.Templates.POV != "templates/pov.docx" {
			t.Errorf("Templates.POV = %q", cfg.Templates.POV)
		}
		if cfg.Generation.Temperature != 0.7 {
			t.Errorf("Temperature = %v, want 0.7", cfg.Generation.Temperature)
		}
		if got := cfg.GenerationTimeout(); got != 2*time.Minute {
			t.Errorf("GenerationTimeout() = %v, want 2m", got)
		}
		if cfg.Document.Font != "微软雅黑" {
			t.Errorf("Font = %q", cfg.Document.Font)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "bad.yaml", "azure:\n  endpont: https://x\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "bad.yaml", "azure: [unclosed\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults valid",
			mutate: func(*Config) {},
		},
		{
			name:    "endpoint too long",
			mutate:  func(c *Config) { c.Azure.Endpoint = strings.Repeat("a", MaxEndpointLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "deployment too long",
			mutate:  func(c *Config) { c.Azure.Deployment = strings.Repeat("d", MaxDeploymentLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "temperature out of range",
			mutate:  func(c *Config) { c.Generation.Temperature = 2.5 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative max tokens",
			mutate:  func(c *Config) { c.Generation.MaxTokens = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "bad timeout",
			mutate:  func(c *Config) { c.Generation.Timeout = "soon" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Generation.Timeout = "-1m" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative body size",
			mutate:  func(c *Config) { c.Document.BodySizePt = -1 },
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
