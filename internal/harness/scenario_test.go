package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/objcmp/internal/compare"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "test.yaml", `
name: test_scenario
description: "Test scenario for validation"
profile:
  mode: oracle
  null_order: first
cases:
  - name: less
    left: "int:1"
    right: "number:1.5"
    expect: lt
    symmetric: true
  - name: predicate
    left: "varchar:a"
    right: "varchar:b"
    op: "<="
    expect: "true"
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "Test scenario for validation", scenario.Description)
	assert.Equal(t, "oracle", scenario.Profile.Mode)
	assert.Equal(t, "first", scenario.Profile.NullOrder)
	require.Len(t, scenario.Cases, 2)
	assert.True(t, scenario.Cases[0].Symmetric)

	op, err := scenario.Cases[0].Operator()
	require.NoError(t, err)
	assert.Equal(t, compare.CMP, op)
	op, err = scenario.Cases[1].Operator()
	require.NoError(t, err)
	assert.Equal(t, compare.LE, op)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_UnknownField(t *testing.T) {
	_, err := ParseScenario([]byte(`
name: typo
description: "Misspelled field"
cases:
  - name: c
    left: "int:1"
    right: "int:1"
    expected: eq
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing name", `
description: d
cases: [{name: c, left: "int:1", right: "int:1", expect: eq}]
`, "name is required"},
		{"missing description", `
name: n
cases: [{name: c, left: "int:1", right: "int:1", expect: eq}]
`, "description is required"},
		{"no cases", `
name: n
description: d
`, "cases list is required"},
		{"bad profile", `
name: n
description: d
profile: {mode: postgres}
cases: [{name: c, left: "int:1", right: "int:1", expect: eq}]
`, "profile"},
		{"unnamed case", `
name: n
description: d
cases: [{left: "int:1", right: "int:1", expect: eq}]
`, "name is required"},
		{"duplicate case", `
name: n
description: d
cases:
  - {name: c, left: "int:1", right: "int:1", expect: eq}
  - {name: c, left: "int:1", right: "int:2", expect: lt}
`, "duplicate case name"},
		{"bad literal", `
name: n
description: d
cases: [{name: c, left: "integer:1", right: "int:1", expect: eq}]
`, "left"},
		{"bad operator", `
name: n
description: d
cases: [{name: c, left: "int:1", right: "int:1", op: "~", expect: "true"}]
`, "unknown operator"},
		{"ordering needs cmp", `
name: n
description: d
cases: [{name: c, left: "int:1", right: "int:1", op: eq, expect: eq}]
`, "requires op cmp"},
		{"bool needs predicate", `
name: n
description: d
cases: [{name: c, left: "int:1", right: "int:1", expect: "true"}]
`, "requires a predicate operator"},
		{"null-safe needs cmp", `
name: n
description: d
cases: [{name: c, left: "int:1", right: "int:1", op: lt, expect: "false", nullsafe: true}]
`, "nullsafe cases must use cmp"},
		{"null-safe never null", `
name: n
description: d
cases: [{name: c, left: "null", right: "int:1", expect: "null", nullsafe: true}]
`, "cannot happen on the null-safe path"},
		{"invariant needs null-safe", `
name: n
description: d
cases: [{name: c, left: "int:1", right: "varchar:1", expect: invariant}]
`, "requires nullsafe: true"},
		{"missing expect", `
name: n
description: d
cases: [{name: c, left: "int:1", right: "int:1"}]
`, "expect is required"},
		{"unknown expect", `
name: n
description: d
cases: [{name: c, left: "int:1", right: "int:1", expect: maybe}]
`, "unknown expect"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scenario")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenarios_Directory(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "b.yml", `
name: second
description: d
cases: [{name: c, left: "int:1", right: "int:1", expect: eq}]
`)
	writeScenario(t, dir, "a.yaml", `
name: first
description: d
cases: [{name: c, left: "int:1", right: "int:1", expect: eq}]
`)
	writeScenario(t, dir, "notes.txt", "ignored")

	scenarios, err := LoadScenarios(dir)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "first", scenarios[0].Name)
	assert.Equal(t, "second", scenarios[1].Name)

	one, err := LoadScenarios(filepath.Join(dir, "b.yml"))
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "second", one[0].Name)
}

func TestLoadScenarios_Errors(t *testing.T) {
	_, err := LoadScenarios(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	_, err = LoadScenarios(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenario files found")

	dir := t.TempDir()
	path := writeScenario(t, dir, "bad.yaml", "name: [")
	_, err = LoadScenarios(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestTestdataScenarios_Load(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"documents", "nulls", "numeric", "oracle", "strings", "temporal"}, names)
}
