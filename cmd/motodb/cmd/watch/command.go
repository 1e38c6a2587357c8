// Package watch implements the motodb watch command.
package watch

import (
	"github.com/spf13/cobra"

	"github.com/garagekit/motodb/internal/appcontext"
)

// NewCommand creates the watch command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild whenever the source tree changes",
		Long: `Watch builds once, then keeps rebuilding whenever a file under the
source root changes. Rapid event bursts (editor saves) are debounced
into a single rebuild.

A failed rebuild is reported and watching continues; the next change
gets a fresh build. Stop with Ctrl-C.`,
		Example: `  motodb watch
  motodb watch -s ./bikes -d ./out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			builder, err := app.Builder()
			if err != nil {
				return err
			}

			app.Logger().Info().
				Str("source", app.SourceDir()).
				Str("dest", app.OutputDir()).
				Msg("Watching for changes")
			return builder.Watch(cmd.Context())
		},
	}
}
