// Package build orchestrates the motodb pipeline: clean the destination,
// compile the schema, discover source documents, validate and aggregate each
// one, re-validate the merged database, and write the artifacts.
//
// The pipeline is linear and fail-fast. Every error aborts the whole run;
// there is no retry, skip-and-continue, or partial-output mode. The pipeline
// itself never exits the process; callers decide what a failed run means.
package build

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/garagekit/motodb/pkg/catalog"
	"github.com/garagekit/motodb/pkg/constants"
	"github.com/garagekit/motodb/pkg/errors"
	"github.com/garagekit/motodb/pkg/logging"
	"github.com/garagekit/motodb/pkg/schema"
)

// Config holds the pipeline's directories and schema location.
type Config struct {
	// SourceDir is the root of the source document tree.
	SourceDir string

	// OutputDir is destroyed and rebuilt unconditionally at run start.
	OutputDir string

	// SchemaFile is the schema document's path relative to SourceDir.
	SchemaFile string
}

// Result summarizes a successful run.
type Result struct {
	Records      int
	DatabasePath string
	IndexPath    string
	Duration     time.Duration
}

// Pipeline runs builds for one configuration.
type Pipeline struct {
	cfg    Config
	logger *zerolog.Logger
}

// New creates a pipeline for the given configuration.
func New(cfg Config, logger *zerolog.Logger) (*Pipeline, error) {
	if cfg.SourceDir == "" {
		return nil, errors.New("source directory is required")
	}
	if cfg.SchemaFile == "" {
		cfg.SchemaFile = constants.SchemaFile
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger}, nil
}

// Run executes one full build: on success the destination directory holds
// the merged database, the index, and a staged copy of every source
// document. On failure the destination holds no generated artifacts.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if p.cfg.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}
	start := time.Now()

	if err := clean(p.cfg.OutputDir); err != nil {
		return nil, err
	}

	acc, paths, err := p.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	dbPath, ixPath, err := write(acc.Database(), acc.Index(), p.cfg.SourceDir, p.cfg.OutputDir, paths)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Records:      acc.Len(),
		DatabasePath: dbPath,
		IndexPath:    ixPath,
		Duration:     time.Since(start),
	}
	p.logger.Info().
		Int("records", result.Records).
		Str("database", result.DatabasePath).
		Str("index", result.IndexPath).
		Dur("duration", result.Duration).
		Msg("Build succeeded")
	return result, nil
}

// Check runs the validation half of the pipeline without touching the
// destination directory: discover, load, validate, and detect duplicates.
func (p *Pipeline) Check(ctx context.Context) (*Result, error) {
	start := time.Now()

	acc, _, err := p.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{Records: acc.Len(), Duration: time.Since(start)}
	p.logger.Info().
		Int("records", result.Records).
		Dur("duration", result.Duration).
		Msg("Validation succeeded")
	return result, nil
}

// aggregate compiles the schema, discovers sources in lexicographic order,
// and folds every validated record into a fresh accumulator. The merged
// collection is re-validated against the schema before being returned.
func (p *Pipeline) aggregate(ctx context.Context) (*catalog.Accumulator, []string, error) {
	validator, err := schema.Compile(filepath.Join(p.cfg.SourceDir, p.cfg.SchemaFile))
	if err != nil {
		return nil, nil, err
	}

	paths, err := catalog.Discover(p.cfg.SourceDir, p.cfg.SchemaFile)
	if err != nil {
		return nil, nil, err
	}
	p.logger.Debug().Int("documents", len(paths)).Msg("Discovered source documents")

	acc := catalog.NewAccumulator()
	for _, rel := range paths {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		doc, err := catalog.Load(p.cfg.SourceDir, rel)
		if err != nil {
			return nil, nil, err
		}

		if err := p.validate(validator, doc.Path, doc.Value); err != nil {
			return nil, nil, err
		}

		if err := acc.Add(doc); err != nil {
			return nil, nil, err
		}
		p.logger.Debug().
			Str("file", doc.Path).
			Str("record", doc.Record.Name).
			Msg("Accumulated record")
	}

	// Records that validate alone can still merge into an invalid aggregate.
	if err := p.validate(validator, "merged database", acc.Value()); err != nil {
		return nil, nil, err
	}

	return acc, paths, nil
}

// validate runs the validator and reports one diagnostic per violated
// constraint, pointing at the offending location in the named document.
func (p *Pipeline) validate(validator *schema.Validator, name string, value any) error {
	result := validator.Validate(value)
	if result.Valid {
		return nil
	}

	for _, v := range result.Violations {
		p.logger.Error().
			Str("document", name).
			Str("path", v.Path).
			Msg(v.Message)
	}
	return errors.NewValidationError(name, result.Violations)
}
