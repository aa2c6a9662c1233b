package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/objcmp/internal/config"
	"github.com/roach88/objcmp/internal/harness"
)

// ValidationError is one file that failed validation.
type ValidationError struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool              `json:"valid"`
	Profiles  int               `json:"profiles"`
	Scenarios int               `json:"scenarios"`
	Errors    []ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path>...",
		Short: "Validate profiles and scenarios without running them",
		Long: `Validate CUE comparison profiles (*.cue) and YAML scenarios (a file
or a directory of *.yaml files) without evaluating any comparison.

Profiles are checked against the profile schema; scenarios are parsed,
their literals and operators checked and their embedded profiles validated.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	result := ValidationResult{}
	for _, path := range paths {
		if filepath.Ext(path) == ".cue" {
			formatter.VerboseLog("Validating profile: %s", path)
			if _, err := config.LoadProfile(path); err != nil {
				result.Errors = append(result.Errors, profileValidationError(path, err))
				continue
			}
			result.Profiles++
			continue
		}

		formatter.VerboseLog("Validating scenarios: %s", path)
		scenarios, err := harness.LoadScenarios(path)
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Path:    path,
				Code:    ErrCodeScenario,
				Message: err.Error(),
			})
			continue
		}
		result.Scenarios += len(scenarios)
	}

	if len(result.Errors) > 0 {
		return outputValidationErrors(formatter, result)
	}
	return outputValidateSuccess(formatter, result)
}

func profileValidationError(path string, err error) ValidationError {
	ve := ValidationError{Path: path, Code: ErrCodeProfile, Message: err.Error()}
	var profileErr *config.ProfileError
	if errors.As(err, &profileErr) && profileErr.Pos.IsValid() {
		ve.Line = profileErr.Pos.Line()
	}
	return ve
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	result.Valid = true
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ All valid (%d profile(s), %d scenario(s))\n", result.Profiles, result.Scenarios)
	return nil
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, result ValidationResult) error {
	errs := result.Errors
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		// Validation failures = exit code 1 (test/validation failure)
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, err := range errs {
		if err.Line > 0 {
			fmt.Fprintf(formatter.Writer, "%s line %d\n", err.Path, err.Line)
		} else {
			fmt.Fprintln(formatter.Writer, err.Path)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", err.Code, err.Message)
	}

	// Validation failures = exit code 1 (test/validation failure)
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
