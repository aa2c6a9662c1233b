package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/objcmp/internal/compare"
)

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	var nullSafe bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show which type classes can be compared",
		Long: `Print the comparator support matrix: for every left type class, the
right type classes it compares against without a cast.

Examples:
  objcmp table
  objcmp table --nullsafe
  objcmp table --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Format == "json" {
				return rootOpts.formatter(cmd).Success(compare.Matrix(nullSafe))
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), compare.SupportMatrix(nullSafe))
			return err
		},
	}

	cmd.Flags().BoolVar(&nullSafe, "nullsafe", false, "show the null-safe table")

	return cmd
}
