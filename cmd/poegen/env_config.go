package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pennz1/poe-workflow/internal/config"
)

// envConfig holds configuration from environment variables.
// The AZURE_OPENAI_* names follow the convention Azure tooling uses, so an
// already-configured shell works without a YAML file.
type envConfig struct {
	AzureKey        string // AZURE_OPENAI_KEY
	AzureEndpoint   string // AZURE_OPENAI_ENDPOINT
	AzureDeployment string // AZURE_OPENAI_DEPLOYMENT
	AzureAPIVersion string // AZURE_OPENAI_API_VERSION

	ConfigPath string        // POEGEN_CONFIG: config file path
	OutputDir  string        // POEGEN_OUTPUT_DIR: default output directory
	Timeout    time.Duration // POEGEN_TIMEOUT: per-completion timeout
}

// knownEnvVars lists valid POEGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"POEGEN_CONFIG":     true,
	"POEGEN_OUTPUT_DIR": true,
	"POEGEN_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		AzureKey:        os.Getenv("AZURE_OPENAI_KEY"),
		AzureEndpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureDeployment: os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
		AzureAPIVersion: os.Getenv("AZURE_OPENAI_API_VERSION"),
		ConfigPath:      os.Getenv("POEGEN_CONFIG"),
		OutputDir:       os.Getenv("POEGEN_OUTPUT_DIR"),
	}

	if timeout := os.Getenv("POEGEN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized POEGEN_* variables.
// Helps catch typos like POEGEN_OUTPUT instead of POEGEN_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "POEGEN_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values the config file left empty, so the precedence is:
// CLI flags > config file > env vars > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.AzureKey != "" && cfg.Azure.Key == "" {
		cfg.Azure.Key = env.AzureKey
	}
	if env.AzureEndpoint != "" && cfg.Azure.Endpoint == "" {
		cfg.Azure.Endpoint = env.AzureEndpoint
	}
	if env.AzureDeployment != "" && cfg.Azure.Deployment == "" {
		cfg.Azure.Deployment = env.AzureDeployment
	}
	if env.AzureAPIVersion != "" && cfg.Azure.APIVersion == "" {
		cfg.Azure.APIVersion = env.AzureAPIVersion
	}
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Timeout > 0 && cfg.Generation.Timeout == "" {
		cfg.Generation.Timeout = env.Timeout.String()
	}
}
