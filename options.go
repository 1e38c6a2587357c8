package motodb

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/garagekit/motodb/pkg/constants"
)

// Option is a function that configures a Builder instance
type Option func(*config) error

// config holds the assembled Builder configuration
type config struct {
	sourceDir     string
	outputDir     string
	schemaFile    string
	watchDebounce time.Duration
	logger        *zerolog.Logger
}

// defaultConfig returns the baseline configuration
func defaultConfig() *config {
	return &config{
		schemaFile:    constants.SchemaFile,
		watchDebounce: constants.WatchDebounce,
	}
}

// WithSourceDir configures the root of the source document tree
func WithSourceDir(dir string) Option {
	return func(c *config) error {
		c.sourceDir = dir
		return nil
	}
}

// WithOutputDir configures the destination directory. It is destroyed and
// rebuilt at the start of every build.
func WithOutputDir(dir string) Option {
	return func(c *config) error {
		c.outputDir = dir
		return nil
	}
}

// WithSchemaFile configures the schema document's path relative to the
// source root
func WithSchemaFile(path string) Option {
	return func(c *config) error {
		c.schemaFile = path
		return nil
	}
}

// WithWatchDebounce configures how long watch mode waits after the last
// filesystem event before rebuilding
func WithWatchDebounce(d time.Duration) Option {
	return func(c *config) error {
		c.watchDebounce = d
		return nil
	}
}

// WithLogger configures the logger used by the pipeline
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
