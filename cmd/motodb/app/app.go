// Package app provides the application context and dependency management
// for the motodb CLI. It centralizes configuration, logging, and the
// builder instance behind a single dependency-injection point.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/garagekit/motodb"
	"github.com/garagekit/motodb/internal/appcontext"
)

// App represents the motodb application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Builder instance (lazy-initialized, singleton)
	mu      sync.Mutex
	builder motodb.Builder
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

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

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// SourceDir returns the configured source root.
func (a *App) SourceDir() string {
	return a.config.SourceDir
}

// OutputDir returns the configured destination directory.
func (a *App) OutputDir() string {
	return a.config.OutputDir
}

// Builder returns the builder instance, creating it lazily from the
// current configuration. Only one instance is created.
func (a *App) Builder() (motodb.Builder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.builder != nil {
		return a.builder, nil
	}

	b, err := motodb.New(
		motodb.WithSourceDir(a.config.SourceDir),
		motodb.WithOutputDir(a.config.OutputDir),
		motodb.WithSchemaFile(a.config.SchemaFile),
		motodb.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	a.builder = b
	return b, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
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

// WithBuilder sets a custom builder instance (useful for testing).
func WithBuilder(b motodb.Builder) Option {
	return func(a *App) error {
		a.builder = b
		return nil
	}
}
