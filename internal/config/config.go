// Package config loads the daemon configuration from the environment.
//
// All five variables are required; a missing one is a fatal configuration
// error. Values may also come from .env files, which never override variables
// already present in the process environment.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tarinyoom/llm-stack/pkg/duration"
	"github.com/tarinyoom/llm-stack/pkg/errors"
)

// Environment variable names.
const (
	EnvBaseURL        = "OLLAMA_BASE_URL"
	EnvRequiredModels = "REQUIRED_MODELS"
	EnvStartupTimeout = "STARTUP_TIMEOUT"
	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvLoopInterval   = "LOOP_INTERVAL"
)

// Config holds the daemon configuration, read once at startup and passed into
// components; nothing reads the environment after Load returns.
type Config struct {
	// BaseURL is the address of the model-serving API
	BaseURL string

	// RequiredModels is the ordered set of models to keep present. It may be
	// empty; the reconciler reports that condition per cycle.
	RequiredModels []string

	// StartupTimeout bounds the readiness wait
	StartupTimeout time.Duration

	// RequestTimeout bounds every individual HTTP call
	RequestTimeout time.Duration

	// LoopInterval is the pause between cycles; zero or negative selects
	// one-shot mode
	LoopInterval time.Duration
}

// Load reads configuration from the environment and .env files.
func Load() (*Config, error) {
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	bindRequired()

	baseURL, err := requireString(EnvBaseURL)
	if err != nil {
		return nil, err
	}
	rawModels, err := requireString(EnvRequiredModels)
	if err != nil {
		return nil, err
	}
	startup, err := requireDuration(EnvStartupTimeout)
	if err != nil {
		return nil, err
	}
	request, err := requireDuration(EnvRequestTimeout)
	if err != nil {
		return nil, err
	}
	interval, err := requireDuration(EnvLoopInterval)
	if err != nil {
		return nil, err
	}

	// The loop interval may be negative (one-shot mode); the timeouts may not.
	if startup < 0 {
		return nil, errors.NewConfigError(EnvStartupTimeout, "must not be negative", nil)
	}
	if request < 0 {
		return nil, errors.NewConfigError(EnvRequestTimeout, "must not be negative", nil)
	}

	return &Config{
		BaseURL:        strings.TrimSpace(baseURL),
		RequiredModels: SplitModels(rawModels),
		StartupTimeout: startup,
		RequestTimeout: request,
		LoopInterval:   interval,
	}, nil
}

// OneShot reports whether the configuration selects a single reconciliation
// cycle instead of the repeating loop.
func (c *Config) OneShot() bool {
	return c.LoopInterval <= 0
}

// SplitModels splits a raw model list on whitespace and commas, dropping
// empty entries. Order is preserved.
func SplitModels(raw string) []string {
	return strings.Fields(strings.ReplaceAll(raw, ",", " "))
}

// requireString returns the value of a required variable, failing on unset or
// empty. Whitespace-only values pass; downstream parsing decides their fate.
func requireString(key string) (string, error) {
	value := GetString(key)
	if value == "" {
		return "", errors.NewConfigError(key, "required environment variable not set", errors.ErrMissingConfig)
	}
	return value, nil
}

// requireDuration reads a required variable and parses it with the duration
// grammar. A malformed value is fatal.
func requireDuration(key string) (time.Duration, error) {
	raw, err := requireString(key)
	if err != nil {
		return 0, err
	}
	parsed, err := duration.Parse(raw)
	if err != nil {
		return 0, errors.NewConfigError(key, err.Error(), err)
	}
	return parsed, nil
}

// loadEnvFiles loads environment variables from .env files, best effort.
// Values already in the process environment win.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}
