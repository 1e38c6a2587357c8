// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type, allowing easier testing with mock implementations.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/garagekit/motodb"
)

// Interface defines the application context that commands need.
// The App struct from cmd/motodb/app implements this interface.
type Interface interface {
	// Builder returns the configured database builder, creating it lazily.
	Builder() (motodb.Builder, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// SourceDir returns the configured source root.
	SourceDir() string

	// OutputDir returns the configured destination directory.
	OutputDir() string

	// Version returns the application version string.
	Version() string
}
