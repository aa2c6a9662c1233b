package harness

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders a result as the stable text stored in golden files:
//
//	scenario: <name>
//	run: <run id>
//	profile: <context>
//	pass: <bool>
//	<seq> <case>: <left> <op> <right> => <outcome>
//
// Failed lines carry a trailing "(want <expect>)".
func Snapshot(result *Result) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", result.Scenario)
	fmt.Fprintf(&b, "run: %s\n", result.RunID)
	fmt.Fprintf(&b, "profile: %s\n", result.Profile)
	fmt.Fprintf(&b, "pass: %t\n", result.Pass)
	for _, l := range result.Trace {
		fmt.Fprintf(&b, "%d %s: %s", l.Seq, l.Case, l)
		if !l.Pass {
			fmt.Fprintf(&b, " (want %s)", l.Expect)
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// RunWithGolden runs a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// The harness should use a fixed run ID generator, otherwise the run line
// changes on every run.
func RunWithGolden(t *testing.T, h *Harness, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := h.Run(context.Background(), scenario)
	if err != nil {
		return nil, err
	}
	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares an existing result against its golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Snapshot(result))
}
