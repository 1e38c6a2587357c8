// Package build implements the motodb build command.
package build

import (
	"github.com/spf13/cobra"

	"github.com/garagekit/motodb/internal/appcontext"
)

// NewCommand creates the build command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the merged database and index",
		Long: `Build validates every source document against the schema, merges the
records into a single database, and writes three things to the
destination directory:

1. database.json - the merged database, records in source-path order
2. index.json    - name-keyed lookup index (description + location)
3. a verbatim copy of every source document at its mirrored subpath

The destination directory is destroyed and rebuilt on every run. Any
validation failure, duplicate record name, or I/O error aborts the
whole build; no partial output is committed.`,
		Example: `  motodb build                        # build ./build from the current directory
  motodb build -s ./bikes -d ./out    # explicit source and destination
  motodb build --schema bike.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			builder, err := app.Builder()
			if err != nil {
				return err
			}

			result, err := builder.Build(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Printf("Built %d record(s)\n", result.Records)
			cmd.Printf("  database: %s\n", result.DatabasePath)
			cmd.Printf("  index:    %s\n", result.IndexPath)
			return nil
		},
	}
}
