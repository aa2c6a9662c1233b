package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/objcmp/internal/compare"
	"github.com/roach88/objcmp/internal/config"
	"github.com/roach88/objcmp/internal/store"
	"github.com/roach88/objcmp/internal/types"
)

// RunIDGenerator hands out run IDs.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run IDs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Harness evaluates scenarios through the comparison facade.
type Harness struct {
	ids    RunIDGenerator
	logger *slog.Logger
	store  *store.Store
}

// Option configures a Harness.
type Option func(*Harness)

// WithRunIDGenerator replaces the UUIDv7 run ID generator. Golden tests use
// a fixed generator so traces are byte-identical across runs.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(h *Harness) { h.ids = g }
}

// WithLogger sets the harness logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// WithStore records every run and its cases into st.
func WithStore(st *store.Store) Option {
	return func(h *Harness) { h.store = st }
}

// New creates a harness. Without options it generates UUIDv7 run IDs, logs
// to slog.Default() and records nothing.
func New(opts ...Option) *Harness {
	h := &Harness{
		ids:    UUIDv7Generator{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run evaluates every case of scenario and returns the result.
//
// A case that produces the wrong outcome fails the result; it is not an
// error. Run returns an error only when the scenario cannot be evaluated or
// the run cannot be recorded.
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	profile, err := config.FromSpec(scenario.Profile)
	if err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	cmpCtx := profile.Context()

	result := NewResult(h.ids.Generate(), scenario.Name)
	result.Profile = cmpCtx.String()
	logger := h.logger.With("scenario", scenario.Name, "run_id", result.RunID)

	for i, c := range scenario.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, err := h.runCase(c, profile, int64(i+1))
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		result.Trace = append(result.Trace, line)
		if !line.Pass {
			result.AddError(fmt.Sprintf("case %q: %s: got %s, want %s", c.Name, line, line.Outcome, line.Expect))
		}

		if c.Symmetric {
			if msg := h.checkMirror(c, profile, line.Outcome); msg != "" {
				result.Trace[len(result.Trace)-1].Pass = false
				result.AddError(fmt.Sprintf("case %q: %s", c.Name, msg))
			}
		}

		logger.Debug("case evaluated",
			"case", c.Name,
			"outcome", line.Outcome,
			"pass", line.Pass,
		)
	}

	logger.Info("scenario finished",
		"cases", len(result.Trace),
		"failures", result.Failures(),
		"pass", result.Pass,
	)

	if h.store != nil {
		if err := h.record(ctx, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (h *Harness) runCase(c Case, profile config.Profile, seq int64) (TraceLine, error) {
	left, err := types.ParseLiteral(c.Left)
	if err != nil {
		return TraceLine{}, err
	}
	right, err := types.ParseLiteral(c.Right)
	if err != nil {
		return TraceLine{}, err
	}
	op, err := c.Operator()
	if err != nil {
		return TraceLine{}, err
	}

	outcome := evaluate(left, right, op, c.NullSafe, profile)
	return TraceLine{
		Seq:     seq,
		Case:    c.Name,
		Left:    c.Left,
		Op:      op.Symbol(),
		Right:   c.Right,
		Expect:  c.Expect,
		Outcome: outcome,
		Pass:    outcome == c.Expect,
	}, nil
}

// checkMirror evaluates the swapped case and returns a message when its
// outcome is not the mirror of outcome.
func (h *Harness) checkMirror(c Case, profile config.Profile, outcome string) string {
	mirrored := c
	mirrored.Left, mirrored.Right = c.Right, c.Left
	op, _ := c.Operator()
	mirrored.Op = op.Mirror().String()

	line, err := h.runCase(mirrored, profile, 0)
	if err != nil {
		return fmt.Sprintf("mirrored case failed: %v", err)
	}
	if want := mirrorOutcome(outcome); line.Outcome != want {
		return fmt.Sprintf("mirrored %s: got %s, want %s", line, line.Outcome, want)
	}
	return ""
}

// evaluate runs one comparison and names its outcome with an Expect* value.
func evaluate(left, right types.Value, op compare.Operator, nullSafe bool, profile config.Profile) string {
	if nullSafe {
		res, err := compare.CompareNullSafeChecked(left, right, profile.Collation, profile.NullPos)
		if err != nil {
			return outcomeOfError(err)
		}
		return res.String()
	}

	rv, needCast, err := compare.CompareAndMaterialize(left, right, profile.Context(), op)
	switch {
	case err != nil:
		return outcomeOfError(err)
	case needCast:
		return ExpectNeedsCast
	}
	switch rv.Kind() {
	case compare.KindInt:
		return compare.Result(rv.Int()).String()
	case compare.KindBool:
		return rv.String()
	}
	return ExpectNull
}

func outcomeOfError(err error) string {
	switch {
	case compare.IsInvariantViolation(err):
		return ExpectInvariant
	case compare.IsIncomparableError(err):
		return ExpectIncomparable
	case compare.IsUnsupportedPairError(err):
		return ExpectNeedsCast
	}
	return "error: " + err.Error()
}

func mirrorOutcome(outcome string) string {
	switch outcome {
	case ExpectLT:
		return ExpectGT
	case ExpectGT:
		return ExpectLT
	}
	return outcome
}

func (h *Harness) record(ctx context.Context, result *Result) error {
	seq, err := h.store.RecordRun(ctx, store.RunRecord{
		ID:       result.RunID,
		Scenario: result.Scenario,
		Profile:  result.Profile,
		Pass:     result.Pass,
		Cases:    len(result.Trace),
		Failures: result.Failures(),
	})
	if err != nil {
		return fmt.Errorf("recording run %s: %w", result.RunID, err)
	}

	cases := make([]store.CaseRecord, len(result.Trace))
	for i, l := range result.Trace {
		cases[i] = store.CaseRecord{
			RunID:   result.RunID,
			Seq:     l.Seq,
			Name:    l.Case,
			Left:    l.Left,
			Right:   l.Right,
			Op:      l.Op,
			Expect:  l.Expect,
			Outcome: l.Outcome,
			Pass:    l.Pass,
		}
	}
	if err := h.store.RecordCases(ctx, cases); err != nil {
		return fmt.Errorf("recording cases of run %s: %w", result.RunID, err)
	}

	h.logger.Info("run recorded", "run_id", result.RunID, "seq", seq)
	return nil
}
