// Package app provides the application context and dependency management
// for the model-manager CLI. It follows idiomatic Go patterns for CLI
// applications by centralizing configuration, dependency injection, and
// lifecycle management.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tarinyoom/llm-stack/internal/config"
	"github.com/tarinyoom/llm-stack/internal/ollama"
)

// App represents the model-manager application with all its dependencies.
// It provides a centralized place for configuration, logging, and the API
// client, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// CLI configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Daemon configuration and API client (lazy-initialized, singletons)
	mu     sync.RWMutex
	daemon *config.Config
	client *ollama.Client
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load CLI configuration
	cliConfig, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = cliConfig

	// Initialize logger
	logger := NewLogger(cliConfig)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the explicitly requested output format, or an empty
// string when format detection should decide.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Config returns the daemon configuration, loading it lazily from the
// environment on first use. This is thread-safe and ensures the environment
// is read only once.
func (a *App) Config() (*config.Config, error) {
	a.mu.RLock()
	if a.daemon != nil {
		cfg := a.daemon
		a.mu.RUnlock()
		return cfg, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loadDaemonConfigLocked()
}

// Client returns the API client, creating it lazily from the daemon
// configuration. This is thread-safe and ensures only one client is created.
func (a *App) Client() (*ollama.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		client := a.client
		a.mu.RUnlock()
		return client, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	cfg, err := a.loadDaemonConfigLocked()
	if err != nil {
		return nil, err
	}

	a.client = ollama.New(cfg.BaseURL, buildClientOptions(cfg)...)
	return a.client, nil
}

// loadDaemonConfigLocked returns the daemon configuration, loading it from
// the environment if needed. Callers must hold the write lock.
func (a *App) loadDaemonConfigLocked() (*config.Config, error) {
	if a.daemon != nil {
		return a.daemon, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	a.daemon = cfg
	return cfg, nil
}

// Shutdown performs graceful shutdown of the application.
// It releases any resources held by the API client.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.RLock()
	client := a.client
	a.mu.RUnlock()

	if client != nil {
		client.CloseIdleConnections()
	}

	return nil
}

// buildClientOptions constructs client options from the daemon configuration.
func buildClientOptions(cfg *config.Config) []ollama.Option {
	var opts []ollama.Option

	// A zero request timeout keeps the client default
	if cfg.RequestTimeout > 0 {
		opts = append(opts, ollama.WithTimeout(cfg.RequestTimeout))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom CLI configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithDaemonConfig sets a preloaded daemon configuration (useful for testing).
func WithDaemonConfig(cfg *config.Config) Option {
	return func(a *App) error {
		a.daemon = cfg
		return nil
	}
}

// WithClient sets a custom API client (useful for testing).
func WithClient(client *ollama.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
