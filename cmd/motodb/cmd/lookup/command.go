// Package lookup implements the motodb lookup command.
package lookup

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/garagekit/motodb/internal/appcontext"
	"github.com/garagekit/motodb/pkg/catalog"
	"github.com/garagekit/motodb/pkg/constants"
	"github.com/garagekit/motodb/pkg/errors"
)

// NewCommand creates the lookup command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name>",
		Short: "Look up a record in a built index",
		Long: `Lookup reads the index of a previous build and prints the record's
description and source location. The index exists precisely so single
records can be found without parsing the full database.`,
		Example: `  motodb lookup CB750
  motodb lookup XT500 -d ./out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			entries, err := catalog.ReadIndex(filepath.Join(app.OutputDir(), constants.IndexFile))
			if err != nil {
				return err
			}

			entry, ok := entries[name]
			if !ok {
				return fmt.Errorf("record %q: %w", name, errors.ErrNotFound)
			}

			cmd.Printf("%s\n", name)
			cmd.Printf("  description: %s\n", entry.Description)
			cmd.Printf("  location:    %s\n", entry.Location)
			return nil
		},
	}
}
