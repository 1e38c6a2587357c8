// Package main provides the entry point for the motodb CLI tool.
package main

import (
	"context"
	"os"

	"github.com/garagekit/motodb/cmd/motodb/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Cancel the run on SIGINT/SIGTERM; a build is all-or-nothing, so an
	// aborted run just leaves the cleaned destination directory behind.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
