package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/objcmp/internal/compare"
	"github.com/roach88/objcmp/internal/types"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	Op       string
	NullSafe bool
}

// CompareOutput is the result of one comparison.
type CompareOutput struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	Op        string `json:"op"`
	Profile   string `json:"profile"`
	Kind      string `json:"kind"`
	Result    string `json:"result"`
	NeedsCast bool   `json:"needs_cast"`
}

func (o CompareOutput) String() string {
	if o.NeedsCast {
		return "needs cast"
	}
	return o.Result
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Compare two values",
		Long: `Compare two value literals and print the materialized result.

With --op cmp (the default) the result is -1, 0 or 1. Predicate operators
print true or false. SQL NULL prints NULL. A pair without a direct
comparator prints "needs cast": the caller has to convert one side first.

Exit codes:
  0 - Comparison produced a result (including NULL and needs cast)
  1 - The values are incomparable
  2 - Command error (bad literal, unknown operator, invalid profile)

Examples:
  objcmp compare int:-1 uint64:18446744073709551615
  objcmp compare "varchar:abc" "varchar:'abc '" --mode oracle
  objcmp compare null int:1 --nullsafe --profile nulls_last.cue
  objcmp compare number:2.5 int:2 --op ">=" --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Op, "op", "cmp", "operator: cmp, eq, ne, lt, le, gt, ge or a SQL symbol")
	cmd.Flags().BoolVar(&opts.NullSafe, "nullsafe", false, "order through the null-safe table (cmp only)")

	return cmd
}

func runCompare(opts *CompareOptions, leftText, rightText string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	left, err := types.ParseLiteral(leftText)
	if err != nil {
		return commandError(formatter, ErrCodeLiteral, "invalid left value", err)
	}
	right, err := types.ParseLiteral(rightText)
	if err != nil {
		return commandError(formatter, ErrCodeLiteral, "invalid right value", err)
	}
	op, err := compare.ParseOperator(opts.Op)
	if err != nil {
		return commandError(formatter, ErrCodeGeneric, "invalid operator", err)
	}
	if opts.NullSafe && op != compare.CMP {
		return commandError(formatter, ErrCodeGeneric, "invalid operator",
			fmt.Errorf("--nullsafe requires --op cmp, got %s", op))
	}
	profile, err := opts.LoadProfile()
	if err != nil {
		_ = formatter.Error(ErrCodeProfile, err.Error(), nil)
		return err
	}

	out := CompareOutput{
		Left:    leftText,
		Right:   rightText,
		Op:      op.Symbol(),
		Profile: profile.Context().String(),
	}
	opts.Logger().Debug("comparing",
		"left_type", left.Type().String(),
		"right_type", right.Type().String(),
		"op", op.String(),
		"profile", out.Profile,
	)

	if opts.NullSafe {
		res, err := compare.CompareNullSafeChecked(left, right, profile.Collation, profile.NullPos)
		if err != nil {
			return compareFailure(formatter, err)
		}
		out.Kind = compare.KindInt.String()
		out.Result = strconv.Itoa(int(res))
		return formatter.Success(out)
	}

	rv, needCast, err := compare.CompareAndMaterialize(left, right, profile.Context(), op)
	if err != nil {
		return compareFailure(formatter, err)
	}
	out.NeedsCast = needCast
	out.Kind = rv.Kind().String()
	out.Result = rv.String()
	return formatter.Success(out)
}

// compareFailure reports a comparison error. Incomparable values are a
// result the caller asked about; anything else is a usage error.
func compareFailure(formatter *OutputFormatter, err error) error {
	code := errorCode(err)
	details := map[string]string{}
	if ce, ok := compare.AsCompareError(err); ok {
		details["left_type"] = ce.Left.String()
		details["right_type"] = ce.Right.String()
		details["op"] = ce.Op.String()
	}
	_ = formatter.Error(code, err.Error(), details)

	if code == ErrCodeIncomparable {
		return WrapExitError(ExitFailure, "values are incomparable", err)
	}
	return WrapExitError(ExitCommandError, "comparison failed", err)
}

func commandError(formatter *OutputFormatter, code, message string, err error) error {
	_ = formatter.Error(code, fmt.Sprintf("%s: %v", message, err), nil)
	return WrapExitError(ExitCommandError, message, err)
}
