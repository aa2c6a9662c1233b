package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/objcmp/internal/compare"
	"github.com/roach88/objcmp/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Profile is a CUE profile file. Mode is a shortcut for a profile that
	// only sets the mode; the two are mutually exclusive.
	Profile string
	Mode    string

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the objcmp CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "objcmp",
		Short: "objcmp - SQL value comparison",
		Long: `Compare typed SQL values the way a MySQL or Oracle compatible engine does.

Values are written as literals of the form kind:text, for example
int:-1, number:1.50, varchar:'abc '@utf8mb4_bin or the bare words
null, min and max.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.Format, opts.Verbose)
			compare.SetLogger(opts.logger)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Profile, "profile", "", "CUE comparison profile file")
	cmd.PersistentFlags().StringVar(&opts.Mode, "mode", "", "compatibility mode (mysql|oracle) when no profile is given")

	cmd.AddCommand(NewCompareCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// Logger returns the logger set up by the root command, or a discarding
// logger when a subcommand runs on its own.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.logger
}

// LoadProfile resolves the comparison profile from --profile or --mode.
func (o *RootOptions) LoadProfile() (config.Profile, error) {
	if o.Profile != "" && o.Mode != "" {
		return config.Profile{}, NewExitError(ExitCommandError, "--profile and --mode are mutually exclusive")
	}
	var (
		p   config.Profile
		err error
	)
	if o.Profile != "" {
		p, err = config.LoadProfile(o.Profile)
	} else {
		p, err = config.FromSpec(config.Spec{Mode: o.Mode})
	}
	if err != nil {
		return config.Profile{}, WrapExitError(ExitCommandError, "invalid profile", err)
	}
	return p, nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
