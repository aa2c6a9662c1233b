package harness

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/objcmp/internal/testutil"
)

func goldenHarness() *Harness {
	return New(
		WithRunIDGenerator(testutil.NewFixedRunIDs()),
		WithLogger(slog.New(slog.DiscardHandler)),
	)
}

// Each scenario under testdata/scenarios has a golden snapshot. Regenerate
// with: go test ./internal/harness -run TestScenarios_Golden -update
func TestScenarios_Golden(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			result, err := RunWithGolden(t, goldenHarness(), s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestSnapshot_MarksFailures(t *testing.T) {
	result := NewResult(testutil.DefaultRunID, "failing")
	result.Profile = "mode=mysql"
	result.Trace = []TraceLine{
		{Seq: 1, Case: "ok", Left: "int:1", Op: "<=>", Right: "int:1", Expect: ExpectEQ, Outcome: ExpectEQ, Pass: true},
		{Seq: 2, Case: "bad", Left: "int:1", Op: "<=>", Right: "int:2", Expect: ExpectGT, Outcome: ExpectLT},
	}
	result.AddError("bad")

	want := strings.Join([]string{
		"scenario: failing",
		"run: " + testutil.DefaultRunID,
		"profile: mode=mysql",
		"pass: false",
		"1 ok: int:1 <=> int:1 => eq",
		"2 bad: int:1 <=> int:2 => lt (want gt)",
		"",
	}, "\n")
	assert.Equal(t, want, string(Snapshot(result)))
}
