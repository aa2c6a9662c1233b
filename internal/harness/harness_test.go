package harness

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/objcmp/internal/config"
	"github.com/roach88/objcmp/internal/store"
	"github.com/roach88/objcmp/internal/testutil"
)

func quietHarness(opts ...Option) *Harness {
	opts = append([]Option{
		WithRunIDGenerator(testutil.NewFixedRunIDs()),
		WithLogger(slog.New(slog.DiscardHandler)),
	}, opts...)
	return New(opts...)
}

func TestRun_AllCasesPass(t *testing.T) {
	scenario := &Scenario{
		Name:        "minimal",
		Description: "Minimal scenario",
		Cases: []Case{
			{Name: "less", Left: "int:1", Right: "int:2", Expect: ExpectLT, Symmetric: true},
			{Name: "predicate", Left: "varchar:a", Right: "varchar:B", Op: "<", Expect: ExpectTrue},
		},
	}

	result, err := quietHarness().Run(context.Background(), scenario)
	require.NoError(t, err)

	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
	assert.Equal(t, testutil.DefaultRunID, result.RunID)
	assert.Equal(t, "minimal", result.Scenario)
	require.Len(t, result.Trace, 2)
	assert.Equal(t, int64(1), result.Trace[0].Seq)
	assert.Equal(t, "<=>", result.Trace[0].Op)
	assert.Equal(t, "<", result.Trace[1].Op)
	assert.Equal(t, 0, result.Failures())
}

func TestRun_WrongExpectationFails(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong",
		Description: "Expects the wrong ordering",
		Cases: []Case{
			{Name: "wrong", Left: "int:1", Right: "int:2", Expect: ExpectGT},
			{Name: "right", Left: "int:2", Right: "int:2", Expect: ExpectEQ},
		},
	}

	result, err := quietHarness().Run(context.Background(), scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `case "wrong"`)
	assert.Contains(t, result.Errors[0], "got lt, want gt")
	assert.Equal(t, 1, result.Failures())
	assert.False(t, result.Trace[0].Pass)
	assert.True(t, result.Trace[1].Pass)
}

func TestRun_Outcomes(t *testing.T) {
	nullSafeOff := false
	tests := []struct {
		name    string
		profile config.Spec
		c       Case
	}{
		{"three-way", config.Spec{}, Case{Left: "int:-1", Right: "uint64:18446744073709551615", Expect: ExpectLT}},
		{"predicate false", config.Spec{}, Case{Left: "int:1", Right: "int:2", Op: "ge", Expect: ExpectFalse}},
		{"sql null", config.Spec{NullSafe: &nullSafeOff}, Case{Left: "null", Right: "int:2", Op: "eq", Expect: ExpectNull}},
		{"null ordered", config.Spec{}, Case{Left: "null", Right: "int:2", Expect: ExpectLT}},
		{"null last", config.Spec{NullOrder: "last"}, Case{Left: "null", Right: "int:2", Expect: ExpectGT}},
		{"incomparable", config.Spec{}, Case{Left: "datetime:0", Right: "timestamp:0", Expect: ExpectIncomparable}},
		{"offset fixes timezone", config.Spec{TZOffset: "0s"}, Case{Left: "datetime:0", Right: "timestamp:0", Expect: ExpectEQ}},
		{"needs cast", config.Spec{}, Case{Left: "int:1", Right: "varchar:1", Op: "=", Expect: ExpectNeedsCast}},
		{"oracle end space", config.Spec{Mode: "oracle"}, Case{Left: "varchar:a", Right: "varchar:'a '", Expect: ExpectLT}},
		{"collation override", config.Spec{Collation: "utf8mb4_general_ci"},
			Case{Left: "varchar:a@utf8mb4_bin", Right: "varchar:A@utf8mb4_general_ci", Expect: ExpectEQ}},
		{"null-safe", config.Spec{}, Case{Left: "null", Right: "max", Expect: ExpectLT, NullSafe: true}},
		{"null-safe invariant", config.Spec{}, Case{Left: "interval_ym:1", Right: "interval_ds:1", Expect: ExpectInvariant, NullSafe: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.c.Name = tt.name
			tt.c.Symmetric = true
			scenario := &Scenario{Name: "outcomes", Description: "outcomes", Profile: tt.profile, Cases: []Case{tt.c}}

			result, err := quietHarness().Run(context.Background(), scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestRun_SymmetricNaN(t *testing.T) {
	scenario := &Scenario{
		Name:        "mirror",
		Description: "Mirror check",
		Cases: []Case{
			{Name: "nan", Left: "double:NaN", Right: "double:1", Expect: ExpectEQ, Symmetric: true},
		},
	}
	result, err := quietHarness().Run(context.Background(), scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)

	assert.Equal(t, ExpectGT, mirrorOutcome(ExpectLT))
	assert.Equal(t, ExpectLT, mirrorOutcome(ExpectGT))
	assert.Equal(t, ExpectTrue, mirrorOutcome(ExpectTrue))
	assert.Equal(t, ExpectNull, mirrorOutcome(ExpectNull))
}

func TestRun_InvalidProfile(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad_profile",
		Description: "Unknown mode",
		Profile:     config.Spec{Mode: "postgres"},
		Cases:       []Case{{Name: "c", Left: "int:1", Right: "int:1", Expect: ExpectEQ}},
	}
	_, err := quietHarness().Run(context.Background(), scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestRun_BadLiteral(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad_literal",
		Description: "Unparseable literal",
		Cases:       []Case{{Name: "c", Left: "int:abc", Right: "int:1", Expect: ExpectEQ}},
	}
	_, err := quietHarness().Run(context.Background(), scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `case "c"`)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scenario := &Scenario{
		Name:        "canceled",
		Description: "Canceled before the first case",
		Cases:       []Case{{Name: "c", Left: "int:1", Right: "int:1", Expect: ExpectEQ}},
	}
	_, err := quietHarness().Run(ctx, scenario)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_RecordsIntoStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "oracle.yaml"))
	require.NoError(t, err)

	result, err := quietHarness(WithStore(st)).Run(ctx, scenario)
	require.NoError(t, err)

	run, ok, err := st.GetRun(ctx, result.RunID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), run.Seq)
	assert.Equal(t, "oracle", run.Scenario)
	assert.Equal(t, result.Profile, run.Profile)
	assert.True(t, run.Pass)
	assert.Equal(t, 3, run.Cases)
	assert.Equal(t, 0, run.Failures)

	cases, err := st.CasesForRun(ctx, result.RunID, false)
	require.NoError(t, err)
	require.Len(t, cases, 3)
	assert.Equal(t, "varchar keeps trailing space", cases[0].Name)
	assert.Equal(t, "lt", cases[0].Outcome)

	failed, err := st.CasesForRun(ctx, result.RunID, true)
	require.NoError(t, err)
	assert.Empty(t, failed)
}

func TestRun_RecordFailureNamesRun(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "oracle.yaml"))
	require.NoError(t, err)

	_, err = quietHarness(WithStore(st)).Run(context.Background(), scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording run "+testutil.DefaultRunID+": ")
}

func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := New(WithRunIDGenerator(testutil.NewFixedRunIDs()), WithLogger(logger))

	scenario := &Scenario{
		Name:        "logged",
		Description: "Logging",
		Cases:       []Case{{Name: "c", Left: "int:1", Right: "int:1", Expect: ExpectEQ}},
	}
	_, err := h.Run(context.Background(), scenario)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="case evaluated"`)
	assert.Contains(t, out, `msg="scenario finished"`)
	assert.Contains(t, out, "run_id="+testutil.DefaultRunID)
	assert.Equal(t, 2, strings.Count(out, "scenario=logged"))
}

func TestUUIDv7Generator(t *testing.T) {
	g := UUIDv7Generator{}
	a, b := g.Generate(), g.Generate()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
	assert.Equal(t, byte('7'), a[14])
}
