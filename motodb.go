// Package motodb builds a merged motorcycle service-interval database from a
// tree of per-bike source documents. Every document is validated against a
// shared JSON Schema, record names must be unique across the build, and the
// output is a deterministic database plus a name-keyed lookup index.
package motodb

import (
	"context"
	"fmt"

	"github.com/garagekit/motodb/pkg/build"
)

// Builder runs builds for one configured source and destination.
type Builder interface {
	// Build runs the full pipeline and writes the artifacts.
	Build(ctx context.Context) (*build.Result, error)

	// Validate runs discovery, validation, and duplicate detection without
	// writing anything.
	Validate(ctx context.Context) (*build.Result, error)

	// Watch builds once, then rebuilds on source-tree changes until ctx is
	// cancelled.
	Watch(ctx context.Context) error
}

// builder is the internal implementation of the Builder interface
type builder struct {
	config   *config
	pipeline *build.Pipeline
}

// New creates a new Builder with the given options.
func New(opts ...Option) (Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	pipeline, err := build.New(build.Config{
		SourceDir:  cfg.sourceDir,
		OutputDir:  cfg.outputDir,
		SchemaFile: cfg.schemaFile,
	}, cfg.logger)
	if err != nil {
		return nil, err
	}

	return &builder{config: cfg, pipeline: pipeline}, nil
}

// Build runs the full pipeline and writes the artifacts.
func (b *builder) Build(ctx context.Context) (*build.Result, error) {
	return b.pipeline.Run(ctx)
}

// Validate runs the pipeline's validation half without writing output.
func (b *builder) Validate(ctx context.Context) (*build.Result, error) {
	return b.pipeline.Check(ctx)
}

// Watch builds once, then rebuilds on changes until ctx is cancelled.
func (b *builder) Watch(ctx context.Context) error {
	return b.pipeline.Watch(ctx, b.config.watchDebounce)
}
