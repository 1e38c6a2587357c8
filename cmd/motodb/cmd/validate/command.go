// Package validate implements the motodb validate command.
package validate

import (
	"github.com/spf13/cobra"

	"github.com/garagekit/motodb/internal/appcontext"
)

// NewCommand creates the validate command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate source documents without building",
		Long: `Validate runs the build pipeline's checks without writing anything:
every source document is validated against the schema, record names
are checked for uniqueness, and the merged collection is re-validated
as a whole.

Each schema violation is reported with a JSON Pointer to the offending
location and a message. The destination directory is not touched.`,
		Example: `  motodb validate
  motodb validate -s ./bikes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			builder, err := app.Builder()
			if err != nil {
				return err
			}

			result, err := builder.Validate(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Printf("Validated %d record(s), no problems found\n", result.Records)
			return nil
		},
	}
}
