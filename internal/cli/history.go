package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/objcmp/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Run    string // show the cases of this run
	Failed bool   // only failed cases
}

// RunDetail is one recorded run with its cases.
type RunDetail struct {
	Run   store.RunRecord    `json:"run"`
	Cases []store.CaseRecord `json:"cases"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history <db>",
		Short: "Show recorded scenario runs",
		Long: `List the runs recorded by "objcmp test --record", oldest first.

With --run the cases of one run are shown in scenario order.

Examples:
  objcmp history runs.db
  objcmp history runs.db --run 0190a000-0000-7000-8000-000000000001
  objcmp history runs.db --run 0190a000-0000-7000-8000-000000000001 --failed`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Run, "run", "", "run ID to show cases for")
	cmd.Flags().BoolVar(&opts.Failed, "failed", false, "only show failed cases (with --run)")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, dbPath string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := opts.formatter(cmd)

	// store.Open creates missing databases; history only reads.
	if _, err := os.Stat(dbPath); err != nil {
		return WrapExitError(ExitCommandError, "database not found", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if opts.Run == "" {
		runs, err := st.ListRuns(ctx)
		if err != nil {
			_ = formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to list runs", err)
		}
		if opts.Format == "json" {
			return formatter.Success(runs)
		}
		writeRuns(cmd.OutOrStdout(), runs)
		return nil
	}

	run, ok, err := st.GetRun(ctx, opts.Run)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}
	if !ok {
		_ = formatter.Error(ErrCodeStore, fmt.Sprintf("run not found: %s", opts.Run), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", opts.Run))
	}
	cases, err := st.CasesForRun(ctx, opts.Run, opts.Failed)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read cases", err)
	}

	if opts.Format == "json" {
		return formatter.Success(RunDetail{Run: run, Cases: cases})
	}
	w := cmd.OutOrStdout()
	writeRuns(w, []store.RunRecord{run})
	fmt.Fprintf(w, "profile: %s\n", run.Profile)
	for _, c := range cases {
		mark := "✓"
		if !c.Pass {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %d %s: %s %s %s => %s", mark, c.Seq, c.Name, c.Left, c.Op, c.Right, c.Outcome)
		if !c.Pass {
			fmt.Fprintf(w, " (want %s)", c.Expect)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func writeRuns(w io.Writer, runs []store.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}
	for _, r := range runs {
		status := "pass"
		if !r.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(w, "#%d %s %s %s (%d cases, %d failed)\n",
			r.Seq, r.ID, status, r.Scenario, r.Cases, r.Failures)
	}
}

